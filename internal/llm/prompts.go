package llm

import (
	"strings"
)

const maxResumeChars = 60000

const analysisInstructions = `You are a career analyst. Read the resume below and respond with a single JSON object, no prose and no code fences.

Required keys:
- "name": candidate full name (string)
- "email": contact email (string, empty if absent)
- "skills": array of strings
- "experience": short summary of total experience (string)

Optional keys, include when the resume supports them:
- "currentPosition": {"title","designation","company","duration"}
- "careerAnalysis": {
    "currentLevel", "totalYearsOfExperience" (number), "suggestedNextRole", "careerProgression",
    "positionHistory": [{"title","designation","company","duration","level","responsibilities":[string]}],
    "progressionRoadmap": {
      "targetRole", "estimatedTimeframe",
      "requiredSkills": [{"skill","priority":"high|medium|low","currentLevel":"none|basic|intermediate|advanced","actionItems":[string]}],
      "certifications": [{"name","priority":"high|medium|low","timeframe"}],
      "experienceGaps": [{"area","suggestion"}],
      "milestones": [{"title","timeframe","actions":[string]}]
    }
  }
- "analysis": object of named scores, each an integer 0-100 (e.g. "clarity", "impact", "skillsMatch")`

// BuildAnalysisPrompt renders the single-turn prompt shared by all providers.
func BuildAnalysisPrompt(input AnalyzeInput) string {
	text := strings.TrimSpace(input.ResumeText)
	if len(text) > maxResumeChars {
		text = strings.ToValidUTF8(text[:maxResumeChars], "")
	}
	var b strings.Builder
	b.WriteString(analysisInstructions)
	if name := strings.TrimSpace(input.FileName); name != "" {
		b.WriteString("\n\nFile name: ")
		b.WriteString(name)
	}
	b.WriteString("\n\nResume:\n")
	b.WriteString(text)
	return b.String()
}

// StripCodeFences removes a surrounding markdown code fence, which some models add despite instructions.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
