package stats

import (
	"context"

	"school/internal/domain"
)

type StudentStats interface {
	Count(ctx context.Context) (int64, error)
	CountByFaculty(ctx context.Context, facultyID int64) (int64, error)
	AverageAge(ctx context.Context) (float64, bool, error)
	Latest(ctx context.Context, n int) ([]domain.Student, error)
	NamesWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

type FacultyStats interface {
	LongestName(ctx context.Context) (string, error)
}
