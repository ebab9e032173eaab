package markdown

import "regexp"

type multiAnswerPattern struct {
	name string
	re   *regexp.Regexp
}

// multiAnswerPatterns detect choices such as "A and B", "A, B only" or "A-C" whose
// meaning breaks when choices are shuffled.
var multiAnswerPatterns = []multiAnswerPattern{
	{"letter and letter", regexp.MustCompile(`(?i)\b[A-E]\s+and\s+[A-E](\s+only)?\b`)},
	{"letter list", regexp.MustCompile(`(?i)\b[A-E],\s*[A-E](\s+and\s+[A-E])*(\s+only)?\b`)},
	{"trailing letter list", regexp.MustCompile(`(?i)\b[A-E]\s*,\s*[A-E](\s*,\s*[A-E])*\s*$`)},
	{"both letters", regexp.MustCompile(`(?i)\bBoth\s+[A-E]\s+and\s+[A-E]\b`)},
	{"letter through letter", regexp.MustCompile(`(?i)\b[A-E]\s+through\s+[A-E]\b`)},
	{"letter range", regexp.MustCompile(`(?i)\b[A-E]\s*[-–]\s*[A-E]\b`)},
}

// DetectMultiAnswer returns the name of the first multi-answer pattern matching the
// choice text, or "" when the choice is randomization-safe.
func DetectMultiAnswer(choice string) string {
	for _, pattern := range multiAnswerPatterns {
		if pattern.re.MatchString(choice) {
			return pattern.name
		}
	}
	return ""
}
