package student

import (
	"context"

	"school/internal/domain"
)

// StudentRepository defines the persistence operations the service needs.
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	ListByAge(ctx context.Context, age int) ([]domain.Student, error)
	ListByAgeBetween(ctx context.Context, minAge, maxAge int) ([]domain.Student, error)
	FindByName(ctx context.Context, name string) (*domain.Student, error)
	ListByNameContaining(ctx context.Context, part string) ([]domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// FacultyLookup resolves faculty references.
type FacultyLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Faculty, error)
}
