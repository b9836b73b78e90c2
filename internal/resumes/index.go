package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"resume-viewer/internal/shared/storage/kv"
	"resume-viewer/internal/shared/telemetry"
)

// IndexKey is the well-known key holding the JSON array of records.
const IndexKey = "resumes"

// Index is the ordered, durable list of resume records kept as one JSON array
// in a kv.Store. The medium only supports whole-value writes, so Append is a
// read-modify-write of the entire array, serialized within the process.
type Index struct {
	store kv.Store
	mu    sync.Mutex
}

// NewIndex constructs an Index over store.
func NewIndex(store kv.Store) *Index {
	return &Index{store: store}
}

// Append adds rec at the end of the list. Existing records are left untouched.
func (ix *Index) Append(ctx context.Context, rec Record) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	raw, ok, err := ix.store.Get(ctx, IndexKey)
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}
	records := ix.decode(raw, ok)
	records = append(records, rec)

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := ix.store.Set(ctx, IndexKey, string(payload)); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// List returns all records, oldest first. It never fails: an unreadable or
// corrupt value is logged and reported as an empty list.
func (ix *Index) List(ctx context.Context) []Record {
	raw, ok, err := ix.store.Get(ctx, IndexKey)
	if err != nil {
		telemetry.Error("resume.index.read_failed", map[string]any{"error": err})
		return []Record{}
	}
	return ix.decode(raw, ok)
}

// FindByID returns the record with id, if present.
func (ix *Index) FindByID(ctx context.Context, id string) (Record, bool) {
	for _, rec := range ix.List(ctx) {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

func (ix *Index) decode(raw string, ok bool) []Record {
	if !ok || raw == "" {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		telemetry.Error("resume.index.corrupt", map[string]any{
			"error": err,
			"bytes": len(raw),
		})
		return []Record{}
	}
	if records == nil {
		return []Record{}
	}
	return records
}
