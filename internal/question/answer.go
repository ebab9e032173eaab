package question

import (
	"sort"
	"strings"
)

// IndexLetter converts a 0-based choice index to its letter. Indices outside A-Z
// yield an empty string.
func IndexLetter(index int) string {
	if index < 0 || index >= 26 {
		return ""
	}
	return string(rune('A' + index))
}

// IndicesToLetters converts 0-based indices to a sorted letter list,
// e.g. [3] -> "D" and [2, 0] -> "A, C".
func IndicesToLetters(indices []int) string {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	letters := make([]string, 0, len(sorted))
	for _, index := range sorted {
		if letter := IndexLetter(index); letter != "" {
			letters = append(letters, letter)
		}
	}
	return strings.Join(letters, ", ")
}

// LetterIndex converts a single answer letter to its 0-based index.
func LetterIndex(letter string) (int, bool) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return 0, false
	}
	return int(letter[0] - 'A'), true
}
