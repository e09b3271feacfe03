package student

import (
	"context"
	"errors"
	"strings"

	"school/internal/domain"
	"school/internal/pkg/apperrors"
	"school/internal/pkg/logger"
)

type Service struct {
	students  StudentRepository
	faculties FacultyLookup
}

func NewService(students StudentRepository, faculties FacultyLookup) *Service {
	return &Service{students: students, faculties: faculties}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrStudentNotFound)
	}
	return st, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

func (s *Service) FilterByAge(ctx context.Context, age int) ([]domain.Student, error) {
	return s.students.ListByAge(ctx, age)
}

// FilterByAgeRange is inclusive on both ends. Both bounds are required;
// min > max simply matches nothing.
func (s *Service) FilterByAgeRange(ctx context.Context, minAge, maxAge *int) ([]domain.Student, error) {
	if minAge == nil || maxAge == nil {
		return nil, ErrAgeRange
	}
	return s.students.ListByAgeBetween(ctx, *minAge, *maxAge)
}

func (s *Service) FindByName(ctx context.Context, name string) (*domain.Student, error) {
	st, err := s.students.FindByName(ctx, name)
	if err != nil {
		return nil, notFound(err, ErrStudentNotFound)
	}
	return st, nil
}

func (s *Service) FilterByNameContains(ctx context.Context, part string) ([]domain.Student, error) {
	return s.students.ListByNameContaining(ctx, part)
}

// Filter applies the first criterion of f that is set. An exact name with no
// match yields an empty list rather than an error.
func (s *Service) Filter(ctx context.Context, f Filter) ([]domain.Student, error) {
	switch {
	case f.Age != nil && *f.Age > 0:
		return s.FilterByAge(ctx, *f.Age)
	case strings.TrimSpace(f.Name) != "":
		st, err := s.FindByName(ctx, f.Name)
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Student{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []domain.Student{*st}, nil
	case strings.TrimSpace(f.Part) != "":
		return s.FilterByNameContains(ctx, f.Part)
	default:
		return s.List(ctx)
	}
}

// Create ignores any id on st and stores a new student.
func (s *Service) Create(ctx context.Context, st *domain.Student) (*domain.Student, error) {
	if err := validate(st); err != nil {
		return nil, err
	}
	if err := s.checkFaculty(ctx, st.FacultyID); err != nil {
		return nil, err
	}

	st.ID = 0
	if err := s.students.Create(ctx, st); err != nil {
		logger.Error().Err(err).Str("name", st.Name).Msg("failed to create student")
		return nil, err
	}
	logger.Info().Int64("student_id", st.ID).Msg("student created")
	return st, nil
}

// Update replaces every mutable field of an existing student. An unknown
// student is reported before an unknown faculty reference.
func (s *Service) Update(ctx context.Context, st *domain.Student) (*domain.Student, error) {
	if err := validate(st); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, st.ID); err != nil {
		return nil, err
	}
	if err := s.checkFaculty(ctx, st.FacultyID); err != nil {
		return nil, err
	}
	if err := s.students.Update(ctx, st); err != nil {
		return nil, notFound(err, ErrStudentNotFound)
	}
	logger.Info().Int64("student_id", st.ID).Msg("student updated")
	return s.GetByID(ctx, st.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.students.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrStudentNotFound
	}
	logger.Info().Int64("student_id", id).Msg("student deleted")
	return nil
}

// FacultyOf returns the faculty a student belongs to. A student without a
// faculty, or whose faculty was deleted, yields ErrFacultyNotFound.
func (s *Service) FacultyOf(ctx context.Context, studentID int64) (*domain.Faculty, error) {
	st, err := s.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !st.HasFaculty() {
		return nil, ErrFacultyNotFound
	}
	f, err := s.faculties.GetByID(ctx, *st.FacultyID)
	if err != nil {
		return nil, notFound(err, ErrFacultyNotFound)
	}
	return f, nil
}

func (s *Service) checkFaculty(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := s.faculties.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownFaculty
	}
	return nil
}

func validate(st *domain.Student) error {
	if st == nil || strings.TrimSpace(st.Name) == "" || st.Age < 0 {
		return ErrInvalidStudent
	}
	return nil
}

// notFound swaps a repository not-found for the module sentinel and passes
// other errors through.
func notFound(err, sentinel error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return sentinel
	}
	return err
}
