// Package kv provides small synchronous key-value media with a hard size ceiling.
//
// Every medium counts the bytes of all keys and values it holds and rejects a
// write that would push the total past its quota.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrQuotaExceeded is returned when a write would exceed the medium's size ceiling.
	ErrQuotaExceeded = errors.New("kv: storage quota exceeded")
	// ErrUnavailable is returned when the medium cannot be accessed at all.
	ErrUnavailable = errors.New("kv: storage unavailable")
)

// Store is a string-valued key-value medium. Set replaces the whole value; there is no partial update.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
