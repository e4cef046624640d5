//go:generate go run go.uber.org/mock/mockgen -source=upload_store.go -destination=../../mocks/mock_upload_store.go -package=mocks
package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type IUploadStore interface {
	Save(name string, r io.Reader) (int64, error)
	Delete(name string) error
}

// UploadStore writes uploaded files flat into one directory.
type UploadStore struct {
	dir string
	log *slog.Logger
}

func NewUploadStore(dir string, log *slog.Logger) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &UploadStore{dir: dir, log: log}, nil
}

func (s *UploadStore) Dir() string {
	return s.dir
}

// Save streams r into dir/name through a temporary file, so a failed upload
// never leaves a partial file under its final name.
func (s *UploadStore) Save(name string, r io.Reader) (int64, error) {
	target, err := s.path(name)
	if err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return 0, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return written, fmt.Errorf("failed to write upload: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return written, err
	}
	s.log.Debug("Upload stored", "name", name, "bytes", written)
	return written, nil
}

func (s *UploadStore) Delete(name string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}
	if err = os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *UploadStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid upload name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
