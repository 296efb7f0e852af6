package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore is the narrow boundary to media objects attached to posts.
type MediaStore interface {
	// Save persists an uploaded file and returns the URL it is served at.
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes the object behind a URL previously returned by Save.
	// Removing a URL that no longer exists is not an error.
	Remove(url string) error
}

// LocalStore keeps media on the local disk under a single directory,
// served by the application at /uploads.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory media is stored in, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *LocalStore) Remove(url string) error {
	if url == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, path.Base(url)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
