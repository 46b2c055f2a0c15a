// Package files stores uploaded task documents on local disk. Files are
// written under a single directory with anonymised names and referenced by
// their /uploads/<name> URL; no size or type limits are enforced here.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploads into dir and hands back their public URL path.
type Store struct {
	dir string
}

// NewStore ensures dir exists and returns a Store rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("files: create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save streams src to disk under a random name and returns the URL path the
// file is served back at. The original filename is never used on disk.
func (s *Store) Save(src io.Reader) (string, error) {
	name := uuid.NewString()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("files: create: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("files: write: %w", err)
	}
	return "/uploads/" + name, nil
}
