package ranking

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the ranking as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The file is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// LoadRanking reads the file. A missing file is an empty ranking; an
// unreadable one is an error; malformed content is an empty ranking.
func (s *FileStore) LoadRanking() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot read %s: %w", s.path, err)
	}
	return Decode(data), nil
}

// SaveRanking replaces the file atomically through a temporary file in the
// same directory.
func (s *FileStore) SaveRanking(list []Record) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ranking: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".ranking-*.json")
	if err != nil {
		return fmt.Errorf("ranking: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("ranking: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ranking: cannot write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("ranking: cannot replace %s: %w", s.path, err)
	}
	return nil
}

var _ Backend = (*FileStore)(nil)
