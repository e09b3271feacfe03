package faculty

import (
	"context"

	"school/internal/domain"
)

type FacultyRepository interface {
	Create(ctx context.Context, f *domain.Faculty) error
	GetByID(ctx context.Context, id int64) (*domain.Faculty, error)
	List(ctx context.Context) ([]domain.Faculty, error)
	ListByColourContaining(ctx context.Context, part string) ([]domain.Faculty, error)
	FindByName(ctx context.Context, name string) (*domain.Faculty, error)
	Update(ctx context.Context, f *domain.Faculty) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// StudentLister derives a faculty's students from the student table.
type StudentLister interface {
	ListByFaculty(ctx context.Context, facultyID int64) ([]domain.Student, error)
}
