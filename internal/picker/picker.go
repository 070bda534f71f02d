// Package picker stands in for the platform image-picking collaborator. It
// imports an existing image file into the application's media directory and
// hands back an opaque URI. Nothing in the core ever looks inside that URI.
package picker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Picker copies picked files into a dedicated media directory so they stay
// available after the original is moved or deleted.
type Picker struct {
	dir string
}

// New creates the media directory if needed and returns a Picker over it.
func New(dir string) (*Picker, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating media dir: %w", err)
	}
	return &Picker{dir: dir}, nil
}

// Pick imports the file at path into the media directory under a fresh
// uuid-based name and returns its file:// URI.
func (p *Picker) Pick(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening picked file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(path))
	localPath := filepath.Join(p.dir, name)

	dst, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("error creating media file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(localPath)
		return "", fmt.Errorf("error copying media file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("error closing media file: %w", err)
	}

	abs, err := filepath.Abs(localPath)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}
