package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-viewer/internal/extract"
	"resume-viewer/internal/shared/metrics"
	"resume-viewer/internal/shared/telemetry"
	"resume-viewer/internal/shared/util"
)

// Service runs the upload flow: analyze the file, then save it.
type Service struct {
	Repo      *Repository
	Extractor extract.Extractor
}

// NewService constructs a Service.
func NewService(repo *Repository, extractor extract.Extractor) *Service {
	return &Service{Repo: repo, Extractor: extractor}
}

// Upload stores up with an analysis. A non-empty rawAnalysis must be a JSON
// object and is used as is; otherwise the Extractor produces the analysis.
func (s *Service) Upload(ctx context.Context, up Upload, rawAnalysis []byte) (Record, error) {
	up.Name = util.SafeFileName(up.Name, "resume")
	up.Type = strings.TrimSpace(up.Type)

	analysis, err := s.analyze(ctx, up, rawAnalysis)
	if err != nil {
		return Record{}, err
	}

	id, err := s.Repo.Save(ctx, up, analysis)
	if err != nil {
		return Record{}, err
	}
	rec, ok := s.Repo.Index.FindByID(ctx, id)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, nil
}

// Get returns the record and file content for id.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	return s.Repo.Get(ctx, id)
}

// Record returns the record for id without loading its file.
func (s *Service) Record(ctx context.Context, id string) (Record, error) {
	rec, ok := s.Repo.Index.FindByID(ctx, id)
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns every record, oldest first.
func (s *Service) List(ctx context.Context) []Record {
	return s.Repo.List(ctx)
}

// RepairFile writes the file content of a partially saved resume.
func (s *Service) RepairFile(ctx context.Context, id string, data []byte) error {
	return s.Repo.RepairBlob(ctx, id, data)
}

func (s *Service) analyze(ctx context.Context, up Upload, rawAnalysis []byte) (Analysis, error) {
	if raw := bytes.TrimSpace(rawAnalysis); len(raw) > 0 {
		var analysis Analysis
		if err := json.Unmarshal(raw, &analysis); err != nil || analysis == nil {
			return nil, fmt.Errorf("%w: analysis must be a JSON object", ErrInvalidInput)
		}
		return analysis, nil
	}

	if s.Extractor == nil {
		return nil, fmt.Errorf("%w: no extractor configured", ErrExtractionFailed)
	}
	start := time.Now()
	out, err := s.Extractor.Extract(ctx, extract.File{Name: up.Name, Type: up.Type, Data: up.Data})
	metrics.ObserveExtraction(time.Since(start))
	if err != nil {
		metrics.IncExtractionFailed()
		telemetry.Warn("resume.extract.failed", map[string]any{
			"file_name": up.Name,
			"error":     err,
		})
		return nil, err
	}
	return Analysis(out), nil
}
