package avatar

import (
	"context"
	"io"
	"os"

	"school/internal/domain"
)

type AvatarRepository interface {
	GetByStudentID(ctx context.Context, studentID int64) (*domain.Avatar, error)
	Upsert(ctx context.Context, a *domain.Avatar) error
	List(ctx context.Context, offset, limit int) ([]domain.Avatar, error)
	Count(ctx context.Context) (int64, error)
	FilePaths(ctx context.Context) (map[string]int64, error)
}

type StudentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// FileStore is the flat directory avatars are written to.
type FileStore interface {
	CreateDirectories() error
	DeleteIfExists(name string) error
	WriteExclusive(name string, r io.Reader, limit int64) (string, int64, error)
	Name(path string) (string, error)
	OpenRead(path string) (*os.File, os.FileInfo, error)
	Remove(path string) error
	List() ([]string, error)
}
