package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"school/internal/domain"
)

type AvatarRepository struct {
	db *gorm.DB
}

func NewAvatarRepository(db *gorm.DB) *AvatarRepository {
	return &AvatarRepository{db: db}
}

func (r *AvatarRepository) GetByStudentID(ctx context.Context, studentID int64) (*domain.Avatar, error) {
	var row avatarRow
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id ASC").
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	a := row.toDomain()
	return &a, nil
}

// Upsert overwrites the student's existing avatar row in place or creates
// one. a.ID and a.UpdatedAt are set from the stored row.
func (r *AvatarRepository) Upsert(ctx context.Context, a *domain.Avatar) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing avatarRow
		err := tx.Where("student_id = ?", a.StudentID).Order("id ASC").First(&existing).Error
		switch {
		case err == nil:
			row := avatarFromDomain(a)
			row.ID = existing.ID
			row.CreatedAt = existing.CreatedAt
			if err := tx.Save(&row).Error; err != nil {
				return translate(err)
			}
			a.ID, a.UpdatedAt = row.ID, row.UpdatedAt
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := avatarFromDomain(a)
			row.ID = 0
			if err := tx.Create(&row).Error; err != nil {
				return translate(err)
			}
			a.ID, a.UpdatedAt = row.ID, row.UpdatedAt
			return nil
		default:
			return translate(err)
		}
	})
}

// List returns one page of avatar metadata ordered by id. Previews are not
// loaded.
func (r *AvatarRepository) List(ctx context.Context, offset, limit int) ([]domain.Avatar, error) {
	var rows []avatarRow
	err := r.db.WithContext(ctx).
		Omit("preview").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	out := make([]domain.Avatar, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AvatarRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&avatarRow{}).Count(&n).Error
	return n, translate(err)
}

// FilePaths maps every stored file path to the owning student id.
func (r *AvatarRepository) FilePaths(ctx context.Context) (map[string]int64, error) {
	type pathRow struct {
		StudentID int64
		FilePath  string
	}
	var rows []pathRow
	err := r.db.WithContext(ctx).
		Model(&avatarRow{}).
		Select("student_id", "file_path").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.FilePath] = row.StudentID
	}
	return out, nil
}
