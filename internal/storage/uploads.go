// Package storage persists complaint attachments on the local filesystem.
// Files are served back by the static handler mounted at the URL prefix.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/uta-gremial/reclamos-service/internal/config"
)

// UploadStore writes attachment files under a configured directory.
type UploadStore struct {
	dir       string
	urlPrefix string
}

// NewUploadStore ensures the upload directory exists.
func NewUploadStore(cfg config.UploadsConfig) (*UploadStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &UploadStore{dir: cfg.Dir, urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/")}, nil
}

// Dir returns the directory files are written to.
func (s *UploadStore) Dir() string {
	return s.dir
}

// URLPrefix returns the public prefix files are served under.
func (s *UploadStore) URLPrefix() string {
	return s.urlPrefix
}

// Save writes the content under a fresh random name that keeps the original
// extension, and returns the public URL. Concurrent uploads are safe because
// every call writes a distinct generated filename.
func (s *UploadStore) Save(originalName string, content io.Reader) (string, error) {
	filename := uuid.NewString() + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.urlPrefix + "/" + filename, nil
}
