// Package storage keeps uploaded photos on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidFilename is returned when a name sanitizes to nothing.
	ErrInvalidFilename = errors.New("invalid filename")
	// ErrNotFound is returned when a stored file does not exist.
	ErrNotFound = errors.New("file not found")
)

const maxNameAttempts = 5

// Store persists photo blobs by name.
type Store interface {
	Save(filename string, content []byte) (string, error)
	Remove(name string) error
	Path(name string) (string, error)
}

// LocalStore writes files into a single flat directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates root if needed and returns a store rooted there.
func NewLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload folder: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &LocalStore{root: abs}, nil
}

// Root returns the absolute upload directory.
func (s *LocalStore) Root() string {
	return s.root
}

// Save writes content under the sanitized form of filename and returns the stored name.
// An existing file is never overwritten: a colliding name gets a short random suffix.
func (s *LocalStore) Save(filename string, content []byte) (string, error) {
	name := SecureFilename(filename)
	if name == "" {
		return "", ErrInvalidFilename
	}

	candidate := name
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		f, err := os.OpenFile(filepath.Join(s.root, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			candidate = withSuffix(name, uuid.NewString()[:8])
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}

		if _, err := f.Write(content); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(f.Name())
			return "", fmt.Errorf("close %s: %w", candidate, err)
		}
		return candidate, nil
	}
	return "", fmt.Errorf("no free name for %s after %d attempts", name, maxNameAttempts)
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (s *LocalStore) Remove(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// Path returns the absolute path of an existing stored file. Names that would change under
// sanitization are treated as missing so no request can reach outside the upload folder.
func (s *LocalStore) Path(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

func (s *LocalStore) resolve(name string) (string, error) {
	if name == "" || SecureFilename(name) != name {
		return "", ErrNotFound
	}
	return filepath.Join(s.root, name), nil
}

func withSuffix(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}
