package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"school/internal/domain"
	"school/internal/pkg/apperrors"
	"school/internal/pkg/filestore"
	"school/internal/pkg/logger"
)

const (
	// MaxSize is the first rejected avatar size in bytes.
	MaxSize int64 = 1 << 20

	MaxPageSize      = 100
	DefaultPageSize  = 20
	defaultMediaType = "application/octet-stream"
)

type Service struct {
	avatars  AvatarRepository
	students StudentChecker
	files    FileStore
}

func NewService(avatars AvatarRepository, students StudentChecker, files FileStore) *Service {
	return &Service{avatars: avatars, students: students, files: files}
}

// Upload stores the file for a student and upserts its metadata record.
//
// The file write and the record write are separate steps. When the record
// write fails the new file is removed unless the existing record still
// points at it; a crash between the two is left for Reconcile. After a
// successful write a previous file under another name is removed.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*domain.Avatar, error) {
	if in.DeclaredSize >= MaxSize {
		return nil, ErrTooLarge
	}

	ok, err := s.students.Exists(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStudentNotFound
	}

	payload, err := io.ReadAll(io.LimitReader(in.Content, MaxSize))
	if err != nil {
		return nil, apperrors.NewIOError("failed to read upload", err)
	}
	if int64(len(payload)) >= MaxSize {
		return nil, ErrTooLarge
	}

	prior, err := s.avatars.GetByStudentID(ctx, in.StudentID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	name := FileName(in.StudentID, in.Filename)

	if err := s.files.CreateDirectories(); err != nil {
		return nil, apperrors.NewIOError("failed to prepare avatar directory", err)
	}
	if err := s.files.DeleteIfExists(name); err != nil {
		return nil, apperrors.NewIOError("failed to replace previous avatar", err)
	}

	path, size, err := s.files.WriteExclusive(name, bytes.NewReader(payload), MaxSize-1)
	switch {
	case errors.Is(err, filestore.ErrExists):
		logger.Warn().Int64("student_id", in.StudentID).Str("file", name).Msg("concurrent avatar upload")
		return nil, apperrors.NewIOError("concurrent upload for the same student", err)
	case errors.Is(err, filestore.ErrTooLarge):
		return nil, ErrTooLarge
	case err != nil:
		return nil, apperrors.NewIOError("failed to write avatar", err)
	}

	mediaType := strings.TrimSpace(in.MediaType)
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	a := &domain.Avatar{
		StudentID: in.StudentID,
		FilePath:  path,
		FileSize:  size,
		MediaType: mediaType,
		Preview:   payload,
	}
	if err := s.avatars.Upsert(ctx, a); err != nil {
		if prior != nil && s.sameFile(prior.FilePath, path) {
			logger.Warn().Int64("student_id", in.StudentID).Str("path", path).Msg("keeping avatar file referenced by existing record")
		} else if rmErr := s.files.Remove(path); rmErr != nil {
			logger.Error().Err(rmErr).Str("path", path).Msg("failed to remove avatar file after metadata error")
		}
		logger.Error().Err(err).Int64("student_id", in.StudentID).Msg("failed to save avatar metadata")
		return nil, err
	}

	if prior != nil && !s.sameFile(prior.FilePath, path) {
		if err := s.files.Remove(prior.FilePath); err != nil {
			logger.Warn().Err(err).Str("path", prior.FilePath).Msg("failed to remove replaced avatar file")
		}
	}

	logger.Info().
		Int64("student_id", in.StudentID).
		Int64("size", size).
		Str("media_type", mediaType).
		Msg("avatar uploaded")
	return a, nil
}

func (s *Service) sameFile(a, b string) bool {
	na, err := s.files.Name(a)
	if err != nil {
		return false
	}
	nb, err := s.files.Name(b)
	return err == nil && na == nb
}

// Preview returns the stored record including the inline payload.
func (s *Service) Preview(ctx context.Context, studentID int64) (*domain.Avatar, error) {
	a, err := s.avatars.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrAvatarNotFound
		}
		return nil, err
	}
	return a, nil
}

// Open returns the record and an open handle to its file. The caller closes
// the reader. FileSize is taken from the file on disk. A record whose file is
// gone yields an IO error.
func (s *Service) Open(ctx context.Context, studentID int64) (*domain.Avatar, io.ReadCloser, error) {
	a, err := s.Preview(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	f, info, err := s.files.OpenRead(a.FilePath)
	if err != nil {
		logger.Warn().Err(err).Int64("student_id", studentID).Str("path", a.FilePath).Msg("avatar file unreadable")
		return nil, nil, apperrors.NewIOError("avatar file is missing", err)
	}
	a.FileSize = info.Size()
	return a, f, nil
}

// List pages through avatar metadata without previews.
func (s *Service) List(ctx context.Context, page, size int) (*Page, error) {
	if page < 0 || size < 1 || size > MaxPageSize || page > math.MaxInt/size {
		return nil, ErrInvalidPage
	}

	items, err := s.avatars.List(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	total, err := s.avatars.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Page: page, Size: size, Total: total}, nil
}

// Reconcile reports records whose file is gone and files no record points
// to. Orphan files are deleted unless dryRun is set. Paths are compared by
// file name under the store root; a record pointing outside the root aborts
// the run before anything is deleted.
func (s *Service) Reconcile(ctx context.Context, dryRun bool) (*ReconcileReport, error) {
	paths, err := s.avatars.FilePaths(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{MissingFiles: []MissingFile{}, Orphans: []string{}}
	referenced := make(map[string]struct{}, len(paths))

	for path, studentID := range paths {
		name, err := s.files.Name(path)
		if err != nil {
			logger.Error().Err(err).Int64("student_id", studentID).Str("path", path).Msg("avatar record outside avatar directory")
			return nil, fmt.Errorf("%w: student %d: %v", ErrForeignPath, studentID, err)
		}
		referenced[name] = struct{}{}

		f, _, err := s.files.OpenRead(path)
		if err != nil {
			report.MissingFiles = append(report.MissingFiles, MissingFile{StudentID: studentID, Path: path})
			continue
		}
		_ = f.Close()
	}
	sort.Slice(report.MissingFiles, func(i, j int) bool {
		return report.MissingFiles[i].StudentID < report.MissingFiles[j].StudentID
	})

	files, err := s.files.List()
	if err != nil {
		return nil, apperrors.NewIOError("failed to list avatar directory", err)
	}
	for _, path := range files {
		if _, ok := referenced[filepath.Base(path)]; ok {
			continue
		}
		report.Orphans = append(report.Orphans, path)
		if dryRun {
			continue
		}
		if err := s.files.Remove(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("failed to remove orphan avatar")
			continue
		}
		report.Removed++
	}

	logger.Info().
		Int("missing", len(report.MissingFiles)).
		Int("orphans", len(report.Orphans)).
		Int("removed", report.Removed).
		Bool("dry_run", dryRun).
		Msg("avatar reconcile finished")
	return report, nil
}

// FileName derives the stored file name from the student id and the
// extension of the uploaded name. Without a usable extension the name is
// just the id.
func FileName(studentID int64, original string) string {
	base := original
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		return fmt.Sprint(studentID)
	}
	ext := base[dot+1:]
	if ext == "" {
		return fmt.Sprint(studentID)
	}
	return fmt.Sprintf("%d.%s", studentID, ext)
}
