package faculty

import (
	"context"
	"errors"
	"strings"

	"school/internal/domain"
	"school/internal/pkg/apperrors"
	"school/internal/pkg/logger"
)

type Service struct {
	faculties FacultyRepository
	students  StudentLister
}

func NewService(faculties FacultyRepository, students StudentLister) *Service {
	return &Service{faculties: faculties, students: students}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Faculty, error) {
	f, err := s.faculties.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Faculty, error) {
	return s.faculties.List(ctx)
}

func (s *Service) FilterByColour(ctx context.Context, part string) ([]domain.Faculty, error) {
	return s.faculties.ListByColourContaining(ctx, part)
}

func (s *Service) FindByName(ctx context.Context, name string) (*domain.Faculty, error) {
	f, err := s.faculties.FindByName(ctx, name)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

// Filter prefers colour over name; with neither it lists every faculty.
func (s *Service) Filter(ctx context.Context, colour, name string) ([]domain.Faculty, error) {
	switch {
	case strings.TrimSpace(colour) != "":
		return s.FilterByColour(ctx, colour)
	case strings.TrimSpace(name) != "":
		f, err := s.FindByName(ctx, name)
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Faculty{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []domain.Faculty{*f}, nil
	default:
		return s.List(ctx)
	}
}

func (s *Service) Create(ctx context.Context, f *domain.Faculty) (*domain.Faculty, error) {
	if f == nil || strings.TrimSpace(f.Name) == "" {
		return nil, ErrInvalidFaculty
	}
	f.ID = 0
	if err := s.faculties.Create(ctx, f); err != nil {
		logger.Error().Err(err).Str("name", f.Name).Msg("failed to create faculty")
		return nil, err
	}
	logger.Info().Int64("faculty_id", f.ID).Msg("faculty created")
	return f, nil
}

func (s *Service) Update(ctx context.Context, f *domain.Faculty) (*domain.Faculty, error) {
	if f == nil || strings.TrimSpace(f.Name) == "" {
		return nil, ErrInvalidFaculty
	}
	if err := s.faculties.Update(ctx, f); err != nil {
		return nil, notFound(err)
	}
	logger.Info().Int64("faculty_id", f.ID).Msg("faculty updated")
	return s.GetByID(ctx, f.ID)
}

// Delete removes the faculty and returns it as it was. Students that pointed
// at it are left untouched.
func (s *Service) Delete(ctx context.Context, id int64) (*domain.Faculty, error) {
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	removed, err := s.faculties.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrFacultyNotFound
	}
	logger.Info().Int64("faculty_id", id).Msg("faculty deleted")
	return f, nil
}

// StudentsOf never fails with not-found; an unknown faculty has no students.
func (s *Service) StudentsOf(ctx context.Context, facultyID int64) ([]domain.Student, error) {
	return s.students.ListByFaculty(ctx, facultyID)
}

func notFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return ErrFacultyNotFound
	}
	return err
}
