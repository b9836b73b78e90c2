package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"resume-viewer/internal/shared/storage/object"
	"resume-viewer/internal/shared/util"
)

const (
	versionFile = ".version"
	blobSuffix  = ".blob"
)

// Store implements BlobStore on the local filesystem. The collection is a
// directory under baseDir; each key becomes one file named by its hash.
type Store struct {
	dir    string
	opener object.Opener
}

// New creates a new local blob store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{dir: filepath.Join(baseDir, object.Collection)}
}

// Open creates the collection directory and stamps its version on first use.
func (s *Store) Open(ctx context.Context) error {
	return s.opener.Do(ctx, s.open)
}

func (s *Store) open(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir: %w", object.ErrOpenFailed, err)
	}

	versionPath := filepath.Join(s.dir, versionFile)
	raw, err := os.ReadFile(versionPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.WriteFile(versionPath, []byte(object.SchemaVersion), 0o644); err != nil {
			return fmt.Errorf("%w: write version: %w", object.ErrOpenFailed, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("%w: read version: %w", object.ErrOpenFailed, err)
	}

	// Only one layout exists; a later version would migrate here.
	if v := strings.TrimSpace(string(raw)); v != object.SchemaVersion {
		return fmt.Errorf("%w: unsupported collection version %q", object.ErrOpenFailed, v)
	}
	return nil
}

// Put writes data under key, replacing any previous blob atomically.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := s.Open(ctx); err != nil {
		return fmt.Errorf("%w: %w", object.ErrWriteFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", object.ErrWriteFailed, err)
	}

	f, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", object.ErrWriteFailed, err)
	}
	tmpName := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write body: %w", object.ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close: %w", object.ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename: %w", object.ErrWriteFailed, err)
	}
	return nil
}

// Get reads the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.Open(ctx); err != nil {
		return nil, false, fmt.Errorf("%w: %w", object.ErrReadFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", object.ErrReadFailed, err)
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: read: %w", object.ErrReadFailed, err)
	}
	return data, true, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, util.HashKey(key)+blobSuffix)
}

var _ object.BlobStore = (*Store)(nil)
