package markdown

// Track summarizes the questions found under one section header.
type Track struct {
	Name      string `json:"track_name"`
	Number    int    `json:"track_number"`
	Questions int    `json:"questions_in_track"`
}

// MultiAnswerHit records a choice whose wording depends on choice order.
type MultiAnswerHit struct {
	Question int    `json:"line"`
	Line     string `json:"text"`
	Choice   string `json:"choice_text"`
	Pattern  string `json:"pattern"`
}

// DebugStats describes a single parse run.
type DebugStats struct {
	Tracks            []Track          `json:"tracks_found"`
	TotalQuestions    int              `json:"total_questions"`
	KeepPrefix        bool             `json:"keep_prefix"`
	ParseErrors       []string         `json:"parsing_errors"`
	DetectedPattern   string           `json:"detected_pattern"`
	SectionFormat     string           `json:"section_format"`
	MultiAnswer       []MultiAnswerHit `json:"multi_answer_patterns"`
	RandomizationSafe bool             `json:"randomization_safe"`
}

func newDebugStats(section string) DebugStats {
	return DebugStats{
		Tracks:            []Track{{Name: section, Number: 1}},
		DetectedPattern:   "Markdown Format",
		SectionFormat:     "Standardized Markdown",
		RandomizationSafe: true,
	}
}

// SectionName returns the name of the first track.
func (s DebugStats) SectionName() string {
	if len(s.Tracks) == 0 {
		return ""
	}
	return s.Tracks[0].Name
}
