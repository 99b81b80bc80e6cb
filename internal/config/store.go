package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists named configuration blobs. The catalog uses it to save
// the station registry without knowing where records live on disk.
type Store interface {
	LoadBlob(name string) ([]byte, error)
	SaveBlob(name string, data []byte) error
}

// FileStore keeps configuration blobs as files under a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) LoadBlob(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) SaveBlob(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace config %s: %w", path, err)
	}
	return nil
}
