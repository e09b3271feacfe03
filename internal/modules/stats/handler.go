package stats

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
	st := rg.Group("/stats")
	{
		st.GET("/students/count", h.Count)
		st.GET("/students/average-age", h.AverageAge)
		st.GET("/students/latest", h.Latest)
		st.GET("/students/names-starting-with-a", h.NamesStartingWithA)
		st.GET("/faculties/longest-name", h.LongestFacultyName)
	}
}

// Count returns the total, or the count for ?faculty_id= when given.
func (h *Handler) Count(c *gin.Context) {
	facultyID, err := utils.OptionalInt64(c, "faculty_id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var n int64
	if facultyID != nil {
		n, err = h.service.CountByFaculty(c.Request.Context(), *facultyID)
	} else {
		n, err = h.service.TotalCount(c.Request.Context())
	}
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}

func (h *Handler) AverageAge(c *gin.Context) {
	avg, err := h.service.AverageAge(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"average_age": avg})
}

func (h *Handler) Latest(c *gin.Context) {
	n, err := utils.IntOrDefault(c, "n", DefaultLatest)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	students, err := h.service.Latest(c.Request.Context(), n)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

func (h *Handler) NamesStartingWithA(c *gin.Context) {
	names, err := h.service.NamesStartingWithA(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, names)
}

func (h *Handler) LongestFacultyName(c *gin.Context) {
	name, err := h.service.LongestFacultyName(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": name})
}
