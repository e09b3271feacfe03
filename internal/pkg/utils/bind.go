package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school/internal/pkg/response"
	"school/internal/pkg/validator"
)

// BindJSON decodes the request body into dst and validates it. On failure the
// error response is already written and false is returned.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return false
	}
	if errs := validator.Validate(dst); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return false
	}
	return true
}
