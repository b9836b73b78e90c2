package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"resume-viewer/internal/shared/util"
)

const fileSuffix = ".kv"

// FileStore keeps one file per key under a directory. Writes go through a temp
// file and rename so a crash never leaves a half-written value behind.
type FileStore struct {
	mu    sync.Mutex
	dir   string
	quota int64
}

// NewFileStore constructs a FileStore rooted at dir. quota <= 0 means unlimited.
func NewFileStore(dir string, quota int64) *FileStore {
	return &FileStore{dir: dir, quota: quota}
}

// Get reads the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: read %s: %w", ErrUnavailable, key, err)
	}
	return string(raw), true, nil
}

// Set writes value under key, enforcing the quota across all keys in the directory.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir: %w", ErrUnavailable, err)
	}

	if s.quota > 0 {
		used, err := s.usedExcept(key)
		if err != nil {
			return err
		}
		if next := used + entrySize(util.HashKey(key), value); next > s.quota {
			return fmt.Errorf("%w: need %d bytes, quota %d", ErrQuotaExceeded, next, s.quota)
		}
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write: %w", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close: %w", ErrUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename: %w", ErrUnavailable, err)
	}
	return nil
}

// usedExcept sums the sizes of every stored entry other than key. Keys are
// stored hashed, so each entry is charged its hashed name plus its value.
func (s *FileStore) usedExcept(key string) (int64, error) {
	skip := filepath.Base(s.path(key))
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: list: %w", ErrUnavailable, err)
	}
	var total int64
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == skip || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return 0, fmt.Errorf("%w: stat: %w", ErrUnavailable, err)
		}
		total += int64(len(strings.TrimSuffix(name, fileSuffix))) + info.Size()
	}
	return total, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, util.HashKey(key)+fileSuffix)
}

var _ Store = (*FileStore)(nil)
