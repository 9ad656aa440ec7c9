package blob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores each collection as <name>.json under a data directory.
// Writes are atomic: a temp file in the same directory is renamed over
// the target, so readers never observe a partial payload.
type File struct {
	dir string
}

// NewFile creates a file-backed blob store rooted at dir, creating the
// directory if needed.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

// Load reads the collection payload. A missing file means the
// collection has never been saved.
func (f *File) Load(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("blob: read %s: %w", name, err)
	}
	return data, true, nil
}

// Save atomically replaces the collection payload.
func (f *File) Save(name string, data []byte) error {
	target := f.path(name)
	tmp, err := os.CreateTemp(f.dir, name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("blob: create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("blob: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("blob: close temp for %s: %w", name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("blob: rename %s: %w", name, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *File) Close() error {
	return nil
}
