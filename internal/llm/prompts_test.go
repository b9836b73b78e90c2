package llm

import (
	"strings"
	"testing"
)

func TestBuildAnalysisPromptIncludesResume(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalyzeInput{ResumeText: "  Jane Doe\nGo developer  ", FileName: "cv.pdf"})
	if !strings.Contains(prompt, "File name: cv.pdf") {
		t.Fatalf("expected file name in prompt")
	}
	if !strings.HasSuffix(prompt, "Resume:\nJane Doe\nGo developer") {
		t.Fatalf("expected trimmed resume at the end of the prompt")
	}
}

func TestBuildAnalysisPromptTruncates(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalyzeInput{ResumeText: strings.Repeat("é", maxResumeChars)})
	if len(prompt) > len(analysisInstructions)+len("\n\nResume:\n")+maxResumeChars {
		t.Fatalf("expected resume text to be truncated, got %d bytes", len(prompt))
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}```", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.in); got != tt.want {
				t.Fatalf("StripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
