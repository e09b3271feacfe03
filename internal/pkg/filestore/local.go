package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"school/internal/pkg/logger"
)

var (
	// ErrExists is returned by WriteExclusive when the destination already exists.
	ErrExists = errors.New("file already exists")
	// ErrTooLarge is returned by WriteExclusive when the reader yields more
	// bytes than the limit allows.
	ErrTooLarge = errors.New("file exceeds size limit")
	// ErrInvalidName is returned for names that would escape the root.
	ErrInvalidName = errors.New("invalid file name")
)

// Local stores flat files under a single root directory.
type Local struct {
	root string
}

// NewLocal roots the store at dir, resolved to an absolute path so stored
// paths stay comparable across processes started from different directories.
func NewLocal(dir string) *Local {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Local{root: filepath.Clean(dir)}
}

// Root returns the directory files are stored under.
func (l *Local) Root() string {
	return l.root
}

// CreateDirectories ensures the root directory exists.
func (l *Local) CreateDirectories() error {
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		logger.Error().Err(err).Str("path", l.root).Msg("Failed to create storage directory")
		return fmt.Errorf("failed to create storage directory %s: %w", l.root, err)
	}
	return nil
}

// Path resolves name to its location under the root.
func (l *Local) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(l.root, name), nil
}

// DeleteIfExists removes the named file; a missing file is not an error.
func (l *Local) DeleteIfExists(name string) error {
	p, err := l.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", p, err)
	}
	return nil
}

// WriteExclusive creates the named file, failing with ErrExists if it is
// already present, and copies at most limit bytes from r into it. On any
// failure the partial file is removed.
func (l *Local) WriteExclusive(name string, r io.Reader, limit int64) (string, int64, error) {
	p, err := l.Path(name)
	if err != nil {
		return "", 0, err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", 0, fmt.Errorf("%w: %s", ErrExists, p)
		}
		return "", 0, fmt.Errorf("failed to create %s: %w", p, err)
	}

	// One extra byte tells an exact-limit payload apart from an oversized one.
	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && n > limit {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(p)
		if errors.Is(err, ErrTooLarge) {
			return "", 0, err
		}
		return "", 0, fmt.Errorf("failed to write %s: %w", p, err)
	}

	logger.Debug().Str("path", p).Int64("size", n).Msg("File written")
	return p, n, nil
}

// Name returns the file name of path when path lies directly under the
// root. Relative paths are resolved against the working directory.
func (l *Local) Name(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, path)
	}
	if filepath.Dir(abs) != l.root {
		return "", fmt.Errorf("%w: %q is outside %s", ErrInvalidName, path, l.root)
	}
	name := filepath.Base(abs)
	if _, err := l.Path(name); err != nil {
		return "", err
	}
	return name, nil
}

// OpenRead opens a file by its full path. The path must lie directly under
// the root.
func (l *Local) OpenRead(path string) (*os.File, os.FileInfo, error) {
	name, err := l.Name(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(filepath.Join(l.root, name))
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

// Remove deletes a file by its full path under the root.
func (l *Local) Remove(path string) error {
	name, err := l.Name(path)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Clear removes every regular file in the root and reports how many were
// deleted.
func (l *Local) Clear() (int, error) {
	files, err := l.List()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, p := range files {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("failed to delete %s: %w", p, err)
		}
		removed++
	}
	if removed > 0 {
		logger.Info().Str("path", l.root).Int("files", removed).Msg("Storage directory cleared")
	}
	return removed, nil
}

// List returns the full paths of regular files in the root, sorted. A missing
// root yields an empty list.
func (l *Local) List() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			out = append(out, filepath.Join(l.root, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
