package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidFileName is returned for names that are empty or attempt traversal.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName removes path separators, quotes and control characters and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}

// SafeFileName sanitizes name, falling back to fallback plus name's extension when it is unusable.
func SafeFileName(name, fallback string) string {
	if s, err := SanitizeFileName(name); err == nil {
		return s
	}
	ext := filepath.Ext(strings.TrimSpace(name))
	if strings.Contains(ext, "..") || strings.ContainsAny(ext, `/\"`) {
		ext = ""
	}
	return fallback + ext
}
