package student

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
	students := rg.Group("/students")
	{
		students.GET("", h.List)
		students.GET("/filter", h.Filter)
		students.GET("/filter-by-age", h.FilterByAgeRange)
		students.GET("/:id", h.GetByID)
		students.GET("/:id/faculty", h.FacultyOf)
		students.POST("", h.Create)
		students.PUT("", h.Update)
		students.DELETE("/:id", h.Delete)
	}
}

// GetByID returns a single student.
// @Summary   Get student
// @Tags      Students
// @Param     id  path  int  true  "Student ID"
// @Success   200  {object}  map[string]interface{}
// @Failure   404  {object}  map[string]interface{}
// @Router    /students/{id} [GET]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	st, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

// Filter applies one of ?age=, ?name= or ?part= in that order of precedence.
// @Summary   Filter students
// @Tags      Students
// @Param     age   query  int     false  "Exact age"
// @Param     name  query  string  false  "Exact name, case-insensitive"
// @Param     part  query  string  false  "Name substring, case-insensitive"
// @Router    /students/filter [GET]
func (h *Handler) Filter(c *gin.Context) {
	age, err := utils.OptionalInt(c, "age")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	students, err := h.service.Filter(c.Request.Context(), Filter{
		Age:  age,
		Name: c.Query("name"),
		Part: c.Query("part"),
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

func (h *Handler) FilterByAgeRange(c *gin.Context) {
	minAge, err := utils.OptionalInt(c, "min")
	if err != nil {
		response.HandleError(c, err)
		return
	}
	maxAge, err := utils.OptionalInt(c, "max")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	students, err := h.service.FilterByAgeRange(c.Request.Context(), minAge, maxAge)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

func (h *Handler) FacultyOf(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	f, err := h.service.FacultyOf(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Create stores a new student. Any id in the body is ignored.
// @Summary   Create student
// @Tags      Students
// @Param     request  body  CreateStudentRequest  true  "Student"
// @Success   201  {object}  map[string]interface{}
// @Failure   400  {object}  map[string]interface{}
// @Router    /students [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	st, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, st)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateStudentRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	st, err := h.service.Update(c.Request.Context(), req.toDomain())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true, "id": id})
}
