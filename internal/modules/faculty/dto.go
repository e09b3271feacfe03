package faculty

import "school/internal/domain"

type CreateFacultyRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Colour string `json:"colour" validate:"max=64"`
}

func (r CreateFacultyRequest) toDomain() *domain.Faculty {
	return &domain.Faculty{Name: r.Name, Colour: r.Colour}
}

type UpdateFacultyRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
	CreateFacultyRequest
}

func (r UpdateFacultyRequest) toDomain() *domain.Faculty {
	f := r.CreateFacultyRequest.toDomain()
	f.ID = r.ID
	return f
}
