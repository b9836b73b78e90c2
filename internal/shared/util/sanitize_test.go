package util

import (
	"errors"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "resume.pdf", want: "resume.pdf"},
		{name: "separators", in: "a/b\\c.pdf", want: "a_b_c.pdf"},
		{name: "quotes and control", in: " cv\"final\".pdf\n", want: "cv_final_.pdf"},
		{name: "traversal", in: "../secret", wantErr: true},
		{name: "blank", in: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFileName) {
					t.Fatalf("expected ErrInvalidFileName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSafeFileNameFallback(t *testing.T) {
	if got := SafeFileName("..pdf", "resume"); got != "resume.pdf" {
		t.Fatalf("unexpected fallback: %q", got)
	}
	if got := SafeFileName("", "resume"); got != "resume" {
		t.Fatalf("unexpected fallback for empty: %q", got)
	}
	if got := SafeFileName("cv.docx", "resume"); got != "cv.docx" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}
