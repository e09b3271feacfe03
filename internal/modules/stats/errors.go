package stats

import (
	"fmt"

	"school/internal/pkg/apperrors"
)

var (
	ErrInvalidLimit = fmt.Errorf("%w: n must be between 1 and %d", apperrors.ErrBadRequest, MaxLatest)
	ErrNoFaculties  = fmt.Errorf("faculty %w", apperrors.ErrNotFound)
)
