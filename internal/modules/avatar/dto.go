package avatar

import (
	"io"

	"school/internal/domain"
)

// UploadInput is one avatar upload as received from the transport.
type UploadInput struct {
	StudentID    int64
	Content      io.Reader
	Filename     string
	DeclaredSize int64
	MediaType    string
}

type Page struct {
	Items []domain.Avatar `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}

// MissingFile is a record whose file is gone from disk.
type MissingFile struct {
	StudentID int64  `json:"student_id"`
	Path      string `json:"path"`
}

type ReconcileReport struct {
	MissingFiles []MissingFile `json:"missing_files"`
	Orphans      []string      `json:"orphans"`
	Removed      int           `json:"removed"`
}
