package faculty

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school/internal/pkg/response"
	"school/internal/pkg/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	faculties := rg.Group("/faculties")
	{
		faculties.GET("", h.List)
		faculties.GET("/filter", h.Filter)
		faculties.GET("/:id", h.GetByID)
		faculties.GET("/:id/students", h.StudentsOf)
		faculties.POST("", h.Create)
		faculties.PUT("", h.Update)
		faculties.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) List(c *gin.Context) {
	faculties, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, faculties)
}

// Filter handles ?colour= (substring) and ?name= (exact); colour wins.
// @Summary   Filter faculties
// @Tags      Faculties
// @Param     colour  query  string  false  "Colour substring, case-insensitive"
// @Param     name    query  string  false  "Exact name, case-insensitive"
// @Router    /faculties/filter [GET]
func (h *Handler) Filter(c *gin.Context) {
	faculties, err := h.service.Filter(c.Request.Context(), c.Query("colour"), c.Query("name"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, faculties)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFacultyRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateFacultyRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Update(c.Request.Context(), req.toDomain())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Delete responds with the removed faculty.
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	f, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) StudentsOf(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	students, err := h.service.StudentsOf(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}
