package question

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// HasChoice reports whether any choice is non-blank.
func HasChoice(choices []string) bool {
	for _, choice := range choices {
		if strings.TrimSpace(choice) != "" {
			return true
		}
	}
	return false
}

// IsTrueFalse reports whether the choices are exactly a true/false pair.
func IsTrueFalse(choices []string) bool {
	if len(choices) != 2 {
		return false
	}
	seen := map[string]struct{}{}
	for _, choice := range choices {
		normalized := NormalizeAnswerText(choice)
		if normalized == "" {
			continue
		}
		seen[normalized] = struct{}{}
	}
	_, hasTrue := seen["true"]
	_, hasFalse := seen["false"]
	return len(seen) == 2 && hasTrue && hasFalse
}

// PadChoices returns choices extended with empty strings up to min entries.
func PadChoices(choices []string, min int) []string {
	padded := append([]string(nil), choices...)
	for len(padded) < min {
		padded = append(padded, "")
	}
	return padded
}
