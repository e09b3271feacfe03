package repository

import (
	"context"

	"gorm.io/gorm"

	"school/internal/domain"
)

type FacultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func (r *FacultyRepository) Create(ctx context.Context, f *domain.Faculty) error {
	row := facultyFromDomain(f)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate(err)
	}
	f.ID = row.ID
	return nil
}

func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*domain.Faculty, error) {
	var row facultyRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	f := row.toDomain()
	return &f, nil
}

func (r *FacultyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&facultyRow{}).Where("id = ?", id).Count(&n).Error
	return n > 0, translate(err)
}

func (r *FacultyRepository) List(ctx context.Context) ([]domain.Faculty, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByColourContaining matches colour as a case-insensitive substring.
func (r *FacultyRepository) ListByColourContaining(ctx context.Context, part string) ([]domain.Faculty, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(colour) LIKE ? "+likeEscape, containsPattern(part)))
}

// FindByName matches name case-insensitively; the lowest id wins on ties.
func (r *FacultyRepository) FindByName(ctx context.Context, name string) (*domain.Faculty, error) {
	var row facultyRow
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("id ASC").
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	f := row.toDomain()
	return &f, nil
}

func (r *FacultyRepository) Update(ctx context.Context, f *domain.Faculty) error {
	row := facultyFromDomain(f)
	res := r.db.WithContext(ctx).
		Model(&facultyRow{}).
		Where("id = ?", f.ID).
		Select("name", "colour").
		Updates(&row)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the faculty row only. Students pointing at it keep their
// faculty_id.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&facultyRow{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// LongestName returns the name with the most characters; the lowest id wins
// on ties.
func (r *FacultyRepository) LongestName(ctx context.Context) (string, error) {
	var row facultyRow
	err := r.db.WithContext(ctx).
		Order("LENGTH(name) DESC").
		Order("id ASC").
		First(&row).Error
	if err != nil {
		return "", translate(err)
	}
	return row.Name, nil
}

func (r *FacultyRepository) find(q *gorm.DB) ([]domain.Faculty, error) {
	var rows []facultyRow
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return facultiesToDomain(rows), nil
}
