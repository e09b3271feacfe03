package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"school/internal/pkg/apperrors"
	"school/internal/pkg/logger"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// HandleError maps an error kind from apperrors to a status code and writes
// the error envelope. Unknown errors become 500 and are logged.
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		Error(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, apperrors.ErrIO):
		_ = c.Error(err)
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("storage failure")
		Error(c, http.StatusInternalServerError, "IO_ERROR", "Storage failure")
	default:
		_ = c.Error(err)
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
