package domain

// Student is a school pupil. FacultyID is nil when the student is not
// assigned to a faculty.
type Student struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Age       int    `json:"age"`
	FacultyID *int64 `json:"faculty_id"`
}

// HasFaculty reports whether the student references a faculty.
func (s Student) HasFaculty() bool {
	return s.FacultyID != nil
}
