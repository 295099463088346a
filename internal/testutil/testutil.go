// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"
	"testing"

	"photoshare/internal/config"
	"photoshare/internal/database"
	"photoshare/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{DBDriver: "sqlite", SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// PNG returns a small valid PNG image.
func PNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		img.Set(x, x, color.RGBA{R: gofakeit.Uint8(), G: 120, B: 200, A: 255})
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// JPEG returns a small valid JPEG image.
func JPEG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, img, nil)
	return buf.Bytes()
}

// Registration holds fake form values for a new account.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Location  string
	Biography string
}

// FakeRegistration returns plausible, unique-enough account details.
func FakeRegistration() Registration {
	return Registration{
		Username:  gofakeit.Username() + gofakeit.DigitN(4),
		Password:  gofakeit.Password(true, true, true, false, false, 14),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Location:  gofakeit.City(),
		Biography: gofakeit.Sentence(8),
	}
}

// BlobStoreStub is an in-memory storage.Store that records every call.
type BlobStoreStub struct {
	mu      sync.Mutex
	Files   map[string][]byte
	Saved   []string
	Removed []string
	SaveErr error
}

// NewBlobStoreStub returns an empty BlobStoreStub.
func NewBlobStoreStub() *BlobStoreStub {
	return &BlobStoreStub{Files: make(map[string][]byte)}
}

var _ storage.Store = (*BlobStoreStub)(nil)

// Save stores content under the sanitized filename.
func (s *BlobStoreStub) Save(filename string, content []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	name := storage.SecureFilename(filename)
	if name == "" {
		return "", storage.ErrInvalidFilename
	}
	s.Files[name] = content
	s.Saved = append(s.Saved, name)
	return name, nil
}

// Remove deletes name.
func (s *BlobStoreStub) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Files, name)
	s.Removed = append(s.Removed, name)
	return nil
}

// Path reports whether name exists; the returned path is the name itself.
func (s *BlobStoreStub) Path(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Files[name]; !ok {
		return "", storage.ErrNotFound
	}
	return name, nil
}

// ErrStub is a generic failure for stubs.
var ErrStub = errors.New("stub failure")
