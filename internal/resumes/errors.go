package resumes

import (
	"errors"
	"fmt"

	"resume-viewer/internal/extract"
	"resume-viewer/internal/shared/storage/kv"
	"resume-viewer/internal/shared/storage/object"
)

var (
	ErrNotFound     = errors.New("resume not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingBlob means the record exists but its file content does not.
	ErrMissingBlob = errors.New("resume file missing")
	ErrPartialSave = errors.New("resume partially saved")

	ErrStorageQuotaExceeded = kv.ErrQuotaExceeded
	ErrStorageUnavailable   = kv.ErrUnavailable
	ErrBlobWriteFailed      = object.ErrWriteFailed
	ErrBlobReadFailed       = object.ErrReadFailed
	ErrExtractionFailed     = extract.ErrExtractionFailed
)

// PartialSaveError reports a save whose record was written but whose file was
// not. The record stays in the index; RepairBlob with ID completes the save.
type PartialSaveError struct {
	ID  string
	Err error
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("resume %s partially saved: %v", e.ID, e.Err)
}

func (e *PartialSaveError) Unwrap() []error {
	return []error{ErrPartialSave, e.Err}
}
