package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-viewer/internal/bootstrap"
	"resume-viewer/internal/resumes"
	"resume-viewer/internal/shared/config"
)

func useMemoryApp(t *testing.T) *bootstrap.App {
	t.Helper()
	app, err := bootstrap.Build(config.Config{
		Env:               "dev",
		MetadataStoreType: "memory",
		ObjectStoreType:   "memory",
		LLMProvider:       "none",
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	orig := newApp
	newApp = func() (*bootstrap.App, error) { return app, nil }
	t.Cleanup(func() {
		newApp = orig
		saveAnalysisFile = ""
		getOut = ""
	})
	return app
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestSaveListGet(t *testing.T) {
	useMemoryApp(t)

	resume := writeTemp(t, "resume.pdf", "%PDF-")
	analysis := writeTemp(t, "analysis.json", `{"name":"A","email":"a@x.com","skills":["Go"],"experience":"5y"}`)

	out, err := execute(t, "save", resume, "--analysis", analysis)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	var rec resumes.Record
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode save output: %v", err)
	}
	if rec.FileName != "resume.pdf" || rec.FileType != "application/pdf" || rec.FileSize != 5 {
		t.Fatalf("unexpected record %+v", rec)
	}

	out, err = execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, rec.ID) {
		t.Fatalf("expected id in list output:\n%s", out)
	}

	dest := filepath.Join(t.TempDir(), "copy.pdf")
	out, err = execute(t, "get", rec.ID, "--out", dest)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, `"email": "a@x.com"`) {
		t.Fatalf("expected summary in get output:\n%s", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(data) != "%PDF-" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestGetUnknownID(t *testing.T) {
	useMemoryApp(t)
	if _, err := execute(t, "get", "resume_1_abcdefghi"); !errors.Is(err, resumes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepairUnknownID(t *testing.T) {
	useMemoryApp(t)
	file := writeTemp(t, "resume.txt", "hello")
	if _, err := execute(t, "repair", "resume_1_abcdefghi", file); !errors.Is(err, resumes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
