package resumes

import "time"

// RecordResponse is the outward-facing representation of a resume record.
type RecordResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	UploadDate time.Time `json:"uploadDate"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Analysis   Analysis  `json:"analysis"`
}

// DetailResponse adds the display summary to a record.
type DetailResponse struct {
	RecordResponse
	Summary Summary `json:"summary"`
}

func toResponse(rec Record) RecordResponse {
	analysis := rec.Analysis
	if analysis == nil {
		analysis = Analysis{}
	}
	return RecordResponse{
		ID:         rec.ID,
		FileName:   rec.FileName,
		UploadDate: rec.UploadDate,
		FileType:   rec.FileType,
		FileSize:   rec.FileSize,
		Analysis:   analysis,
	}
}
