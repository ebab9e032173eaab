package contenthash

import (
	"fmt"
	"slices"
	"sort"

	"quizconv/internal/question"
)

// Difference kinds reported by Compare.
const (
	KindMissing = "missing"
	KindExtra   = "extra"
	KindChoices = "choices"
	KindCorrect = "correct"
)

// identifierLength is the number of question characters used to identify a question.
const identifierLength = 50

// Difference describes one way two question sets disagree.
type Difference struct {
	Kind     string `json:"kind"`
	Question string `json:"question,omitempty"`
	Count    int    `json:"count,omitempty"`
	Message  string `json:"message"`
}

// Compare reports questions missing from or extra in converted, then choice-list and
// correct-answer mismatches for questions present in both. Questions are matched by
// normalized text and compared in normalized form.
func Compare(original, converted []question.Record) []Difference {
	originalByText := indexByQuestion(original)
	convertedByText := indexByQuestion(converted)

	var missing, extra, common []string
	for text := range originalByText {
		if _, ok := convertedByText[text]; ok {
			common = append(common, text)
		} else {
			missing = append(missing, text)
		}
	}
	for text := range convertedByText {
		if _, ok := originalByText[text]; !ok {
			extra = append(extra, text)
		}
	}
	sort.Strings(common)

	var diffs []Difference
	if len(missing) > 0 {
		diffs = append(diffs, Difference{
			Kind:    KindMissing,
			Count:   len(missing),
			Message: fmt.Sprintf("Questions missing in converted file: %d", len(missing)),
		})
	}
	if len(extra) > 0 {
		diffs = append(diffs, Difference{
			Kind:    KindExtra,
			Count:   len(extra),
			Message: fmt.Sprintf("Extra questions in converted file: %d", len(extra)),
		})
	}
	for _, text := range common {
		left, right := originalByText[text], convertedByText[text]
		id := identifier(left.raw)
		if !slices.Equal(left.normalized.Choices, right.normalized.Choices) {
			diffs = append(diffs, Difference{
				Kind:     KindChoices,
				Question: id,
				Message:  fmt.Sprintf("Choice mismatch in question: %s...", id),
			})
		}
		if left.normalized.Correct != right.normalized.Correct {
			diffs = append(diffs, Difference{
				Kind:     KindCorrect,
				Question: id,
				Message:  fmt.Sprintf("Correct answer mismatch in question: %s...", id),
			})
		}
	}
	return diffs
}

type indexedRecord struct {
	raw        string
	normalized Normalized
}

func indexByQuestion(records []question.Record) map[string]indexedRecord {
	index := make(map[string]indexedRecord, len(records))
	for _, record := range records {
		normalized := NormalizeRecord(record)
		index[normalized.Question] = indexedRecord{raw: record.Question, normalized: normalized}
	}
	return index
}

func identifier(text string) string {
	runes := []rune(text)
	if len(runes) > identifierLength {
		runes = runes[:identifierLength]
	}
	return string(runes)
}
