package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"resume-viewer/internal/llm"
)

type stubLLM struct {
	raw   string
	err   error
	input llm.AnalyzeInput
}

func (s *stubLLM) AnalyzeResume(_ context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.raw), nil
}

func textFile() File {
	return File{Name: "resume.txt", Type: "text/plain", Data: []byte("Jane Doe, Go developer")}
}

func TestLLMExtractor_Success(t *testing.T) {
	stub := &stubLLM{raw: `{"name":"Jane Doe","skills":["Go"]}`}
	ex := &LLMExtractor{LLM: stub}

	out, err := ex.Extract(context.Background(), textFile())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out["name"] != "Jane Doe" {
		t.Fatalf("unexpected analysis %v", out)
	}
	if stub.input.ResumeText != "Jane Doe, Go developer" || stub.input.FileName != "resume.txt" {
		t.Fatalf("unexpected llm input %+v", stub.input)
	}
}

func TestLLMExtractor_Failures(t *testing.T) {
	tests := []struct {
		name string
		ex   *LLMExtractor
		file File
	}{
		{name: "no provider", ex: &LLMExtractor{}, file: textFile()},
		{name: "llm error", ex: &LLMExtractor{LLM: &stubLLM{err: llm.ErrNotImplemented}}, file: textFile()},
		{name: "non object", ex: &LLMExtractor{LLM: &stubLLM{raw: `["a"]`}}, file: textFile()},
		{name: "null", ex: &LLMExtractor{LLM: &stubLLM{raw: `null`}}, file: textFile()},
		{name: "empty text", ex: &LLMExtractor{LLM: &stubLLM{raw: `{}`}}, file: File{Name: "a.txt", Type: "text/plain", Data: []byte("   ")}},
		{name: "unsupported", ex: &LLMExtractor{LLM: &stubLLM{raw: `{}`}}, file: File{Name: "a.png", Type: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ex.Extract(context.Background(), tt.file)
			if !errors.Is(err, ErrExtractionFailed) {
				t.Fatalf("expected ErrExtractionFailed, got %v", err)
			}
		})
	}
}

func TestLLMExtractor_KeepsCause(t *testing.T) {
	ex := &LLMExtractor{LLM: &stubLLM{err: llm.ErrNotImplemented}}
	_, err := ex.Extract(context.Background(), textFile())
	if !errors.Is(err, llm.ErrNotImplemented) {
		t.Fatalf("expected wrapped llm error, got %v", err)
	}
}

func TestFuncAdapter(t *testing.T) {
	var ex Extractor = Func(func(_ context.Context, f File) (map[string]any, error) {
		return map[string]any{"file": f.Name}, nil
	})
	out, err := ex.Extract(context.Background(), File{Name: "x.pdf"})
	if err != nil || out["file"] != "x.pdf" {
		t.Fatalf("unexpected result %v %v", out, err)
	}
}
