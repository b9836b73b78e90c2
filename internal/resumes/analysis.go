package resumes

import (
	"github.com/mitchellh/mapstructure"
)

// Analysis is the schema-less payload produced by the extraction step. It is
// stored and returned verbatim; Summary offers a typed read-only view.
type Analysis map[string]any

// Summary is the display view of the fields the viewer knows about. Every
// field is optional; unknown or mistyped fields are left zero.
type Summary struct {
	Name            string           `mapstructure:"name" json:"name,omitempty"`
	Email           string           `mapstructure:"email" json:"email,omitempty"`
	Skills          []string         `mapstructure:"skills" json:"skills,omitempty"`
	Experience      string           `mapstructure:"experience" json:"experience,omitempty"`
	CurrentPosition *CurrentPosition `mapstructure:"currentPosition" json:"currentPosition,omitempty"`
	CareerAnalysis  *CareerAnalysis  `mapstructure:"careerAnalysis" json:"careerAnalysis,omitempty"`
	Scores          map[string]int   `mapstructure:"-" json:"scores,omitempty"`
}

type CurrentPosition struct {
	Title       string `mapstructure:"title" json:"title,omitempty"`
	Designation string `mapstructure:"designation" json:"designation,omitempty"`
	Company     string `mapstructure:"company" json:"company,omitempty"`
	Duration    string `mapstructure:"duration" json:"duration,omitempty"`
}

type CareerPosition struct {
	CurrentPosition  `mapstructure:",squash"`
	Level            string   `mapstructure:"level" json:"level,omitempty"`
	Responsibilities []string `mapstructure:"responsibilities" json:"responsibilities,omitempty"`
}

type CareerAnalysis struct {
	CurrentLevel           string              `mapstructure:"currentLevel" json:"currentLevel,omitempty"`
	TotalYearsOfExperience float64             `mapstructure:"totalYearsOfExperience" json:"totalYearsOfExperience,omitempty"`
	PositionHistory        []CareerPosition    `mapstructure:"positionHistory" json:"positionHistory,omitempty"`
	SuggestedNextRole      string              `mapstructure:"suggestedNextRole" json:"suggestedNextRole,omitempty"`
	CareerProgression      string              `mapstructure:"careerProgression" json:"careerProgression,omitempty"`
	ProgressionRoadmap     *ProgressionRoadmap `mapstructure:"progressionRoadmap" json:"progressionRoadmap,omitempty"`
}

type ProgressionRoadmap struct {
	TargetRole         string             `mapstructure:"targetRole" json:"targetRole,omitempty"`
	EstimatedTimeframe string             `mapstructure:"estimatedTimeframe" json:"estimatedTimeframe,omitempty"`
	RequiredSkills     []ProgressionSkill `mapstructure:"requiredSkills" json:"requiredSkills,omitempty"`
	Certifications     []Certification    `mapstructure:"certifications" json:"certifications,omitempty"`
	ExperienceGaps     []ExperienceGap    `mapstructure:"experienceGaps" json:"experienceGaps,omitempty"`
	Milestones         []Milestone        `mapstructure:"milestones" json:"milestones,omitempty"`
}

type ProgressionSkill struct {
	Skill        string   `mapstructure:"skill" json:"skill,omitempty"`
	Priority     string   `mapstructure:"priority" json:"priority,omitempty"`
	CurrentLevel string   `mapstructure:"currentLevel" json:"currentLevel,omitempty"`
	ActionItems  []string `mapstructure:"actionItems" json:"actionItems,omitempty"`
}

type Certification struct {
	Name      string `mapstructure:"name" json:"name,omitempty"`
	Priority  string `mapstructure:"priority" json:"priority,omitempty"`
	Timeframe string `mapstructure:"timeframe" json:"timeframe,omitempty"`
}

type ExperienceGap struct {
	Area       string `mapstructure:"area" json:"area,omitempty"`
	Suggestion string `mapstructure:"suggestion" json:"suggestion,omitempty"`
}

type Milestone struct {
	Title     string   `mapstructure:"title" json:"title,omitempty"`
	Timeframe string   `mapstructure:"timeframe" json:"timeframe,omitempty"`
	Actions   []string `mapstructure:"actions" json:"actions,omitempty"`
}

// Summary decodes the known optional fields. Decoding is best effort: a
// field with an unexpected shape is dropped rather than failing the view.
func (a Analysis) Summary() Summary {
	var out Summary
	if len(a) == 0 {
		return out
	}

	for key, raw := range a {
		var field Summary
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &field,
			WeaklyTypedInput: true,
		})
		if err != nil {
			continue
		}
		if err := decoder.Decode(map[string]any{key: raw}); err != nil {
			continue
		}
		mergeSummary(&out, field)
	}

	out.Scores = scores(a["analysis"])
	return out
}

func mergeSummary(dst *Summary, src Summary) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Skills != nil {
		dst.Skills = src.Skills
	}
	if src.Experience != "" {
		dst.Experience = src.Experience
	}
	if src.CurrentPosition != nil {
		dst.CurrentPosition = src.CurrentPosition
	}
	if src.CareerAnalysis != nil {
		dst.CareerAnalysis = src.CareerAnalysis
	}
}

// scores collects the numeric entries of the generic "analysis" block,
// clamped to 0-100.
func scores(raw any) map[string]int {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]int)
	for k, v := range m {
		var n float64
		switch x := v.(type) {
		case float64:
			n = x
		case int:
			n = float64(x)
		case int64:
			n = float64(x)
		default:
			continue
		}
		switch {
		case n < 0:
			n = 0
		case n > 100:
			n = 100
		}
		out[k] = int(n + 0.5)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
