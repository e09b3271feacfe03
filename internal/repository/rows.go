package repository

import (
	"time"

	"gorm.io/gorm"

	"school/internal/domain"
)

// Row types are the only structs gorm sees. Domain types stay free of
// persistence tags and are converted explicitly below.

type studentRow struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;not null"`
	Surname   string `gorm:"column:surname"`
	Age       int    `gorm:"column:age;not null;default:0;check:chk_students_age,age >= 0"`
	FacultyID *int64 `gorm:"column:faculty_id;index"`
}

func (studentRow) TableName() string { return "students" }

type facultyRow struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name"`
	Colour string `gorm:"column:colour"`
}

func (facultyRow) TableName() string { return "faculties" }

// avatarRow.StudentID is indexed but not unique: one-per-student is kept by
// the upsert in AvatarRepository, not by a constraint.
type avatarRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	StudentID int64     `gorm:"column:student_id;not null;index"`
	FilePath  string    `gorm:"column:file_path;not null"`
	FileSize  int64     `gorm:"column:file_size"`
	MediaType string    `gorm:"column:media_type"`
	Preview   []byte    `gorm:"column:preview"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (avatarRow) TableName() string { return "avatars" }

// Migrate creates or updates the schema for all school tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&facultyRow{}, &studentRow{}, &avatarRow{})
}

func studentFromDomain(s *domain.Student) studentRow {
	return studentRow{
		ID:        s.ID,
		Name:      s.Name,
		Surname:   s.Surname,
		Age:       s.Age,
		FacultyID: s.FacultyID,
	}
}

func (r studentRow) toDomain() domain.Student {
	return domain.Student{
		ID:        r.ID,
		Name:      r.Name,
		Surname:   r.Surname,
		Age:       r.Age,
		FacultyID: r.FacultyID,
	}
}

func studentsToDomain(rows []studentRow) []domain.Student {
	out := make([]domain.Student, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func facultyFromDomain(f *domain.Faculty) facultyRow {
	return facultyRow{ID: f.ID, Name: f.Name, Colour: f.Colour}
}

func (r facultyRow) toDomain() domain.Faculty {
	return domain.Faculty{ID: r.ID, Name: r.Name, Colour: r.Colour}
}

func facultiesToDomain(rows []facultyRow) []domain.Faculty {
	out := make([]domain.Faculty, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func avatarFromDomain(a *domain.Avatar) avatarRow {
	return avatarRow{
		ID:        a.ID,
		StudentID: a.StudentID,
		FilePath:  a.FilePath,
		FileSize:  a.FileSize,
		MediaType: a.MediaType,
		Preview:   a.Preview,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r avatarRow) toDomain() domain.Avatar {
	return domain.Avatar{
		ID:        r.ID,
		StudentID: r.StudentID,
		FilePath:  r.FilePath,
		FileSize:  r.FileSize,
		MediaType: r.MediaType,
		Preview:   r.Preview,
		UpdatedAt: r.UpdatedAt,
	}
}
