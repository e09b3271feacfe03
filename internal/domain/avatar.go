package domain

import "time"

// Avatar is the metadata record for a student's uploaded image. There is at
// most one per student; uploads overwrite it in place.
type Avatar struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	FilePath  string    `json:"file_path"`
	FileSize  int64     `json:"file_size"`
	MediaType string    `json:"media_type"`
	Preview   []byte    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
