package student

import "school/internal/domain"

type CreateStudentRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Surname   string `json:"surname" validate:"max=255"`
	Age       int    `json:"age" validate:"gte=0,lte=200"`
	FacultyID *int64 `json:"faculty_id,omitempty" validate:"omitempty,gt=0"`
}

func (r CreateStudentRequest) toDomain() *domain.Student {
	return &domain.Student{
		Name:      r.Name,
		Surname:   r.Surname,
		Age:       r.Age,
		FacultyID: r.FacultyID,
	}
}

// UpdateStudentRequest carries the id in the body, as PUT /students does.
type UpdateStudentRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
	CreateStudentRequest
}

func (r UpdateStudentRequest) toDomain() *domain.Student {
	s := r.CreateStudentRequest.toDomain()
	s.ID = r.ID
	return s
}

// Filter selects students by exactly one criterion. Age wins when present and
// positive, then Name, then Part; with none set every student matches.
type Filter struct {
	Age  *int
	Name string
	Part string
}
