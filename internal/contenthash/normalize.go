package contenthash

import (
	"sort"
	"strings"

	"quizconv/internal/question"
)

// Normalized is the hashed form of a question. Fields are declared in key order so the
// encoded JSON has sorted keys.
type Normalized struct {
	Choices  []string `json:"choices"`
	Correct  string   `json:"correct_answer"`
	Question string   `json:"question"`
	Source   string   `json:"source"`
}

// NormalizeRecord lowercases and trims the question and choices, drops empty choices,
// uppercases the correct answer and trims the source.
func NormalizeRecord(record question.Record) Normalized {
	choices := make([]string, 0, len(record.Choices))
	for _, choice := range record.Choices {
		if trimmed := strings.TrimSpace(choice); trimmed != "" {
			choices = append(choices, strings.ToLower(trimmed))
		}
	}
	return Normalized{
		Choices:  choices,
		Correct:  strings.ToUpper(strings.TrimSpace(record.Correct)),
		Question: strings.ToLower(strings.TrimSpace(record.Question)),
		Source:   strings.TrimSpace(record.Source),
	}
}

// Normalize sorts records by (lowercased, original) question text and normalizes each,
// so the result is independent of input order.
func Normalize(records []question.Record) []Normalized {
	sorted := append([]question.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i].Question, sorted[j].Question
		leftLower, rightLower := strings.ToLower(left), strings.ToLower(right)
		if leftLower != rightLower {
			return leftLower < rightLower
		}
		return left < right
	})
	normalized := make([]Normalized, 0, len(sorted))
	for _, record := range sorted {
		normalized = append(normalized, NormalizeRecord(record))
	}
	return normalized
}
