package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DocumentExt is the file extension document files carry on disk.
const DocumentExt = ".vellum.json"

// FSStore keeps documents as files in a single directory.
type FSStore struct {
	dir string
}

// NewFSStore creates a filesystem store rooted at dir, creating the
// directory if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return &FSStore{dir: dir}, nil
}

// Dir returns the directory the store reads from.
func (s *FSStore) Dir() string {
	return s.dir
}

func (s *FSStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("store: invalid document name %q", name)
	}
	return filepath.Join(s.dir, name+DocumentExt), nil
}

// Load implements Store.
func (s *FSStore) Load(ctx context.Context, name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}

// Save implements Store.
func (s *FSStore) Save(ctx context.Context, name string, payload []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// List implements Store.
func (s *FSStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), DocumentExt); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
