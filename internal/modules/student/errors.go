package student

import (
	"fmt"

	"school/internal/pkg/apperrors"
)

var (
	ErrStudentNotFound = fmt.Errorf("student %w", apperrors.ErrNotFound)
	ErrFacultyNotFound = fmt.Errorf("faculty %w", apperrors.ErrNotFound)
	ErrUnknownFaculty  = fmt.Errorf("%w: faculty_id does not reference an existing faculty", apperrors.ErrBadRequest)
	ErrAgeRange        = fmt.Errorf("%w: both min and max are required", apperrors.ErrBadRequest)
	ErrInvalidStudent  = fmt.Errorf("%w: invalid student", apperrors.ErrBadRequest)
)
