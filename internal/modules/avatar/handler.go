package avatar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school/internal/pkg/apperrors"
	"school/internal/pkg/response"
	"school/internal/pkg/utils"
)

// multipartOverhead is the slack allowed on top of MaxSize for multipart
// boundaries and part headers.
const multipartOverhead = 64 << 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/students/:id/avatar", h.Upload)
	rg.GET("/students/:id/avatar", h.Stream)
	rg.GET("/students/:id/avatar/preview", h.Preview)
	rg.GET("/avatars", h.List)
}

// Upload stores the multipart field "avatar" as the student's avatar.
// @Summary   Upload avatar
// @Tags      Avatars
// @Accept    multipart/form-data
// @Param     id      path      int   true  "Student ID"
// @Param     avatar  formData  file  true  "Image, under 1 MiB"
// @Success   200  {object}  map[string]interface{}
// @Failure   404  {object}  map[string]interface{}
// @Failure   413  {object}  map[string]interface{}
// @Router    /students/{id}/avatar [POST]
func (h *Handler) Upload(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxSize+multipartOverhead)

	fh, err := c.FormFile("avatar")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.HandleError(c, ErrTooLarge)
			return
		}
		response.HandleError(c, apperrors.NewBadRequestError("multipart field 'avatar' is required"))
		return
	}

	if fh.Size >= MaxSize {
		response.HandleError(c, ErrTooLarge)
		return
	}

	file, err := fh.Open()
	if err != nil {
		response.HandleError(c, apperrors.NewIOError("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	a, err := h.service.Upload(c.Request.Context(), UploadInput{
		StudentID:    id,
		Content:      file,
		Filename:     fh.Filename,
		DeclaredSize: fh.Size,
		MediaType:    fh.Header.Get("Content-Type"),
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Preview writes the inline copy stored with the record.
func (h *Handler) Preview(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	a, err := h.service.Preview(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(a.Preview)))
	c.Data(http.StatusOK, a.MediaType, a.Preview)
}

// Stream sends the avatar file from disk.
func (h *Handler) Stream(c *gin.Context) {
	id, err := utils.PathID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	a, rc, err := h.service.Open(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, a.FileSize, a.MediaType, rc, nil)
}

// List handles ?page= (from 0) and ?size= (1..100, default 20).
func (h *Handler) List(c *gin.Context) {
	page, err := utils.IntOrDefault(c, "page", 0)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	size, err := utils.IntOrDefault(c, "size", DefaultPageSize)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
