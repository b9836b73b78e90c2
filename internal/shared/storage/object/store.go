package object

import (
	"context"
	"errors"
	"sync"
)

const (
	// Collection is the single named collection every blob lives in.
	Collection = "files"
	// SchemaVersion is the collection layout version written on first open.
	SchemaVersion = "1"
)

var (
	ErrOpenFailed  = errors.New("blob store: open failed")
	ErrWriteFailed = errors.New("blob store: write failed")
	ErrReadFailed  = errors.New("blob store: read failed")
)

// BlobStore is durable key-addressed storage for binary content.
// Get reports ok=false with a nil error for keys that were never written.
type BlobStore interface {
	Open(ctx context.Context) error
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
}

// Opener runs a collection's open step once. A failed attempt is not
// remembered, so the next caller retries.
type Opener struct {
	mu   sync.Mutex
	done bool
}

// Do calls fn unless a previous call already succeeded.
func (o *Opener) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(ctx); err != nil {
		return err
	}
	o.done = true
	return nil
}
