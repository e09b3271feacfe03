package stats

import (
	"context"
	"errors"
	"sort"
	"strings"

	"school/internal/domain"
	"school/internal/pkg/apperrors"
)

const (
	DefaultLatest = 5
	MaxLatest     = 100
)

// Service computes aggregates on every call; nothing is cached.
type Service struct {
	students  StudentStats
	faculties FacultyStats
}

func NewService(students StudentStats, faculties FacultyStats) *Service {
	return &Service{students: students, faculties: faculties}
}

// TotalCount counts every student, with or without a faculty.
func (s *Service) TotalCount(ctx context.Context) (int64, error) {
	return s.students.Count(ctx)
}

func (s *Service) CountByFaculty(ctx context.Context, facultyID int64) (int64, error) {
	return s.students.CountByFaculty(ctx, facultyID)
}

// AverageAge is the mean student age, or 0 when there are no students.
func (s *Service) AverageAge(ctx context.Context) (float64, error) {
	avg, ok, err := s.students.AverageAge(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return avg, nil
}

// Latest returns the n most recently created students, newest first.
func (s *Service) Latest(ctx context.Context, n int) ([]domain.Student, error) {
	if n < 1 || n > MaxLatest {
		return nil, ErrInvalidLimit
	}
	return s.students.Latest(ctx, n)
}

// NamesStartingWithA returns upper-cased names beginning with A or a, sorted.
func (s *Service) NamesStartingWithA(ctx context.Context) ([]string, error) {
	names, err := s.students.NamesWithPrefix(ctx, "a")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.ToUpper(n))
	}
	sort.Strings(out)
	return out, nil
}

func (s *Service) LongestFacultyName(ctx context.Context) (string, error) {
	name, err := s.faculties.LongestName(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", ErrNoFaculties
	}
	return name, err
}
