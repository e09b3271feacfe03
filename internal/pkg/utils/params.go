package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"school/internal/pkg/apperrors"
)

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

// OptionalInt parses an integer query parameter. A missing or blank value
// yields nil.
func OptionalInt(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("query parameter %s must be an integer", name))
	}
	return &v, nil
}

// OptionalInt64 is OptionalInt for 64-bit ids.
func OptionalInt64(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("query parameter %s must be an integer", name))
	}
	return &v, nil
}

// IntOrDefault is OptionalInt with a fallback for a missing value.
func IntOrDefault(c *gin.Context, name string, def int) (int, error) {
	v, err := OptionalInt(c, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}
