package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-viewer/internal/shared/metrics"
	"resume-viewer/internal/shared/storage/object"
	"resume-viewer/internal/shared/telemetry"
)

// Repository presents save/list/fetch over the metadata index and the blob
// store. A save writes the record first and the file second; when the second
// step fails the record is kept and a *PartialSaveError names it so the
// caller can finish the save with RepairBlob.
type Repository struct {
	Index *Index
	Blobs object.BlobStore
	Now   func() time.Time
	NewID func(time.Time) string
}

// NewRepository constructs a Repository with the default clock and id scheme.
func NewRepository(index *Index, blobs object.BlobStore) *Repository {
	return &Repository{Index: index, Blobs: blobs, Now: time.Now, NewID: NewID}
}

// Save records the upload and its analysis and returns the new resume id.
func (r *Repository) Save(ctx context.Context, up Upload, analysis Analysis) (string, error) {
	if strings.TrimSpace(up.Name) == "" {
		return "", fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	now := r.now()
	rec := Record{
		ID:         r.newID(now),
		FileName:   up.Name,
		UploadDate: now,
		FileType:   up.Type,
		FileSize:   int64(len(up.Data)),
		Analysis:   analysis,
	}
	fields := map[string]any{
		"resume_id": rec.ID,
		"file_name": rec.FileName,
		"file_size": rec.FileSize,
	}
	telemetry.Info("resume.save.intent", fields)

	if err := r.Index.Append(ctx, rec); err != nil {
		fields["error"] = err
		telemetry.Error("resume.save.failed", fields)
		metrics.IncSaveFailed()
		return "", err
	}

	if err := r.Blobs.Put(ctx, rec.ID, up.Data); err != nil {
		fields["error"] = err
		telemetry.Error("resume.save.partial", fields)
		metrics.IncPartialSave()
		return "", &PartialSaveError{ID: rec.ID, Err: err}
	}

	telemetry.Info("resume.save.complete", fields)
	metrics.IncSave()
	return rec.ID, nil
}

// List returns every record, oldest first, without loading file content.
func (r *Repository) List(ctx context.Context) []Record {
	return r.Index.List(ctx)
}

// Get returns the record and file content for id. It reports ErrNotFound when
// no record exists and ErrMissingBlob when the record exists without content.
func (r *Repository) Get(ctx context.Context, id string) (Resume, error) {
	rec, ok := r.Index.FindByID(ctx, id)
	if !ok {
		return Resume{}, ErrNotFound
	}

	data, ok, err := r.Blobs.Get(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if !ok {
		telemetry.Warn("resume.get.missing_blob", map[string]any{"resume_id": id})
		return Resume{}, fmt.Errorf("%w: %s", ErrMissingBlob, id)
	}
	return Resume{Record: rec, File: data}, nil
}

// RepairBlob writes the file content for an existing record, completing a
// partial save. It does not touch the index.
func (r *Repository) RepairBlob(ctx context.Context, id string, data []byte) error {
	if _, ok := r.Index.FindByID(ctx, id); !ok {
		return ErrNotFound
	}
	if err := r.Blobs.Put(ctx, id, data); err != nil {
		return err
	}
	metrics.IncRepair()
	telemetry.Info("resume.repair.complete", map[string]any{"resume_id": id, "file_size": len(data)})
	return nil
}

// IsPartialSave extracts the id of a partially saved resume from err.
func IsPartialSave(err error) (string, bool) {
	var pe *PartialSaveError
	if errors.As(err, &pe) {
		return pe.ID, true
	}
	return "", false
}

func (r *Repository) now() time.Time {
	if r.Now == nil {
		return time.Now().UTC()
	}
	return r.Now().UTC()
}

func (r *Repository) newID(now time.Time) string {
	if r.NewID == nil {
		return NewID(now)
	}
	return r.NewID(now)
}
