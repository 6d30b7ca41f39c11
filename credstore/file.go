package credstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File persists the token as a 0600 file. The write goes through a
// rename so a crash mid-save never leaves a truncated token behind.
type File struct {
	path string
}

// DefaultPath returns the per-user token location under the OS config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "boardclient", Key), nil
}

// NewFile describes the newfile operation and its observable behavior.
//
// An empty path selects [DefaultPath].
func NewFile(path string) (*File, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &File{path: path}, nil
}

// Load implements Store. A missing file is not an error.
func (f *File) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save implements Store.
func (f *File) Save(ctx context.Context, token string) error {
	if token == "" {
		return f.Clear(ctx)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear implements Store. Clearing an absent token is not an error.
func (f *File) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
