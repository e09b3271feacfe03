package avatar

import (
	"fmt"

	"school/internal/pkg/apperrors"
)

var (
	ErrAvatarNotFound  = fmt.Errorf("avatar %w", apperrors.ErrNotFound)
	ErrStudentNotFound = fmt.Errorf("student %w", apperrors.ErrNotFound)
	ErrTooLarge        = fmt.Errorf("%w: avatar must be smaller than 1 MiB", apperrors.ErrPayloadTooLarge)
	ErrForeignPath     = fmt.Errorf("%w: avatar record points outside the avatar directory", apperrors.ErrConflict)
	ErrInvalidPage     = fmt.Errorf("%w: page must be >= 0 and size between 1 and %d", apperrors.ErrBadRequest, MaxPageSize)
)
