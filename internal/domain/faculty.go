package domain

// Faculty groups students. Its student set is not stored on the faculty;
// it is always derived from Student.FacultyID.
type Faculty struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Colour string `json:"colour"`
}
