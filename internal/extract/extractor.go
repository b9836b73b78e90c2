package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-viewer/internal/llm"
	"resume-viewer/internal/shared/telemetry"
)

// ErrExtractionFailed wraps every error produced while turning a file into an analysis.
var ErrExtractionFailed = errors.New("extraction failed")

// File is an uploaded document handed to an Extractor.
type File struct {
	Name string
	Type string
	Data []byte
}

// Extractor turns a file into a schema-less analysis payload.
type Extractor interface {
	Extract(ctx context.Context, f File) (map[string]any, error)
}

// LLMExtractor pulls text from the file and asks an LLM to analyze it.
type LLMExtractor struct {
	LLM llm.Client
}

// Extract implements Extractor.
func (e *LLMExtractor) Extract(ctx context.Context, f File) (map[string]any, error) {
	if e == nil || e.LLM == nil {
		return nil, fmt.Errorf("%w: no analysis provider configured", ErrExtractionFailed)
	}

	text, err := TextFromBytes(ctx, f.Data, f.Type, f.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExtractionFailed, f.Name, err)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: %s: no text found", ErrExtractionFailed, f.Name)
	}

	raw, err := e.LLM.AnalyzeResume(ctx, llm.AnalyzeInput{ResumeText: text, FileName: f.Name})
	if err != nil {
		return nil, fmt.Errorf("%w: analyze: %w", ErrExtractionFailed, err)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(raw))), &out); err != nil {
		return nil, fmt.Errorf("%w: analysis is not a JSON object: %w", ErrExtractionFailed, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: analysis is empty", ErrExtractionFailed)
	}

	telemetry.Info("extract.complete", map[string]any{
		"file_name":  f.Name,
		"text_chars": len(text),
		"fields":     len(out),
	})
	return out, nil
}

// Func adapts a function to Extractor.
type Func func(ctx context.Context, f File) (map[string]any, error)

// Extract implements Extractor.
func (fn Func) Extract(ctx context.Context, f File) (map[string]any, error) {
	return fn(ctx, f)
}
