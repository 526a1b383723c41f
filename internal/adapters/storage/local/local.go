package local

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
)

const (
	outputExt = ".mp4"
	tempExt   = ".tmp"
)

// OutputStore keeps rendered videos on the local disk
type OutputStore struct {
	dir string
}

// NewOutputStore returns OutputStore, creating dir when needed
func NewOutputStore(dir string) (*OutputStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &OutputStore{dir: dir}, nil
}

func (s *OutputStore) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+outputExt)
}

// TempPath returns where the video of a job is rendered before Commit
func (s *OutputStore) TempPath(id uuid.UUID) string {
	return s.path(id) + tempExt
}

// Commit publishes the rendered file under its final name
func (s *OutputStore) Commit(id uuid.UUID) error {
	if err := os.Rename(s.TempPath(id), s.path(id)); err != nil {
		return fmt.Errorf("failed to commit output: %w", err)
	}
	return nil
}

// Discard removes a partial render. A missing file is not an error.
func (s *OutputStore) Discard(id uuid.UUID) error {
	if err := os.Remove(s.TempPath(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to discard output: %w", err)
	}
	return nil
}

// Open opens the committed video of a job for reading
func (s *OutputStore) Open(id uuid.UUID) (*domain.OutputFile, error) {
	f, err := os.Open(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrVideoFileNotFound
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, domain.ErrVideoFileNotFound
	}

	return &domain.OutputFile{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Content: f,
	}, nil
}
