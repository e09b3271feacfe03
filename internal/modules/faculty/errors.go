package faculty

import (
	"fmt"

	"school/internal/pkg/apperrors"
)

var (
	ErrFacultyNotFound = fmt.Errorf("faculty %w", apperrors.ErrNotFound)
	ErrInvalidFaculty  = fmt.Errorf("%w: invalid faculty", apperrors.ErrBadRequest)
)
