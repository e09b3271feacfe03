package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"school/internal/domain"
)

const likeEscape = `ESCAPE '\'`

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts s with a store-assigned id and writes the id back to s.
func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	row := studentFromDomain(s)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate(err)
	}
	s.ID = row.ID
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	var row studentRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	s := row.toDomain()
	return &s, nil
}

func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&studentRow{}).Where("id = ?", id).Count(&n).Error
	return n > 0, translate(err)
}

func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *StudentRepository) ListByAge(ctx context.Context, age int) ([]domain.Student, error) {
	return r.find(r.db.WithContext(ctx).Where("age = ?", age))
}

// ListByAgeBetween returns students with minAge <= age <= maxAge.
func (r *StudentRepository) ListByAgeBetween(ctx context.Context, minAge, maxAge int) ([]domain.Student, error) {
	return r.find(r.db.WithContext(ctx).Where("age BETWEEN ? AND ?", minAge, maxAge))
}

// FindByName matches name case-insensitively; the lowest id wins on ties.
func (r *StudentRepository) FindByName(ctx context.Context, name string) (*domain.Student, error) {
	var row studentRow
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("id ASC").
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	s := row.toDomain()
	return &s, nil
}

func (r *StudentRepository) ListByNameContaining(ctx context.Context, part string) ([]domain.Student, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(name) LIKE ? "+likeEscape, containsPattern(part)))
}

func (r *StudentRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]domain.Student, error) {
	return r.find(r.db.WithContext(ctx).Where("faculty_id = ?", facultyID))
}

// Update replaces every mutable column of the row identified by s.ID.
func (r *StudentRepository) Update(ctx context.Context, s *domain.Student) error {
	row := studentFromDomain(s)
	res := r.db.WithContext(ctx).
		Model(&studentRow{}).
		Where("id = ?", s.ID).
		Select("name", "surname", "age", "faculty_id").
		Updates(&row)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete reports whether a row was removed.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&studentRow{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

/* ---------- AGGREGATES ---------- */

func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&studentRow{}).Count(&n).Error
	return n, translate(err)
}

func (r *StudentRepository) CountByFaculty(ctx context.Context, facultyID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&studentRow{}).Where("faculty_id = ?", facultyID).Count(&n).Error
	return n, translate(err)
}

// AverageAge returns the mean age and whether any student exists.
func (r *StudentRepository) AverageAge(ctx context.Context) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&studentRow{}).Select("AVG(age)").Row().Scan(&avg)
	if err != nil {
		return 0, false, translate(err)
	}
	return avg.Float64, avg.Valid, nil
}

// Latest returns up to n students, highest id first.
func (r *StudentRepository) Latest(ctx context.Context, n int) ([]domain.Student, error) {
	var rows []studentRow
	err := r.db.WithContext(ctx).Order("id DESC").Limit(n).Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return studentsToDomain(rows), nil
}

// NamesWithPrefix returns raw names starting with prefix, case-insensitively.
func (r *StudentRepository) NamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&studentRow{}).
		Where("LOWER(name) LIKE ? "+likeEscape, prefixPattern(prefix)).
		Pluck("name", &names).Error
	if err != nil {
		return nil, translate(err)
	}
	return names, nil
}

func (r *StudentRepository) find(q *gorm.DB) ([]domain.Student, error) {
	var rows []studentRow
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return studentsToDomain(rows), nil
}
