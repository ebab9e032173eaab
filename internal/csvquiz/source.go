package csvquiz

import (
	"regexp"
	"strings"
)

// Labels used in formatter source tags.
const (
	LabelQuiz  = "Quiz"
	LabelFinal = "Final"
)

var (
	practiceNumberPattern = regexp.MustCompile(`^[Pp]\s*-?\s*(\d+)$`)
	plainNumberPattern    = regexp.MustCompile(`^\d+$`)
)

// ExtractSourceTag builds the provenance tag used by the extractor, e.g. "PREP FL 12".
func ExtractSourceTag(prefix, number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return prefix
	}
	return prefix + " " + number
}

// FormatSourceTag builds the provenance tag used by the formatter from a prefix, an
// optional quiz/final label and a question number. Practice numbers ("P12") render as
// "P-12" and plain numbers as "#12"; anything else is appended verbatim.
func FormatSourceTag(prefix, label, number string) string {
	parts := []string{prefix}
	if label = strings.TrimSpace(label); label != "" {
		parts = append(parts, label)
	}
	number = strings.TrimSpace(number)
	switch {
	case number == "":
	case practiceNumberPattern.MatchString(number):
		parts = append(parts, "P-"+practiceNumberPattern.FindStringSubmatch(number)[1])
	case plainNumberPattern.MatchString(number):
		parts = append(parts, "#"+number)
	default:
		parts = append(parts, number)
	}
	return strings.Join(parts, " ")
}

// NormalizeLabel maps user input to a canonical label. Unknown input yields "".
func NormalizeLabel(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "quiz":
		return LabelQuiz
	case "final", "final exam":
		return LabelFinal
	default:
		return ""
	}
}

// InferLabel guesses the quiz/final label from a file path.
func InferLabel(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, "final"):
		return LabelFinal
	case strings.Contains(lower, "quiz"):
		return LabelQuiz
	default:
		return ""
	}
}
