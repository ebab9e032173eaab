package markdown

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"quizconv/internal/question"
)

// DefaultSection is used when the document has no "## SECTION:" header.
const DefaultSection = "UNKNOWN-SECTION-SA"

// minQuestionLength is the shortest accepted question text, in characters.
const minQuestionLength = 5

// ErrNoQuestions indicates a document that yielded no usable questions.
var ErrNoQuestions = errors.New("no questions found in markdown")

var (
	sectionPattern     = regexp.MustCompile(`(?m)^## SECTION: (.+)$`)
	questionHeading    = regexp.MustCompile(`(?m)^### Question \d+`)
	checkedChoice      = regexp.MustCompile(`^- \[([xX])\] (.+)$`)
	uncheckedChoice    = regexp.MustCompile(`^- \[ \] (.+)$`)
	answerPattern      = regexp.MustCompile(`(?m)^\*\*Answer:\*\* ([A-E])`)
	pagePattern        = regexp.MustCompile(`(?m)^\*\*Page:\*\* (.*)$`)
	sectionIDPattern   = regexp.MustCompile(`(?m)^\*\*Section:\*\* (.*)$`)
	explanationPattern = regexp.MustCompile(`(?m)^\*\*Explanation:\*\* (.*)$`)
)

// Options controls markdown parsing.
type Options struct {
	// DefaultSection names the track when the document has no section header.
	DefaultSection string
}

// Result is the outcome of parsing one markdown document.
type Result struct {
	Entries []question.Entry
	Stats   DebugStats
}

// ParseFile reads and parses a markdown file.
func ParseFile(path string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read markdown: %w", err)
	}
	return Parse(string(data), opts), nil
}

// Parse splits a standardized markdown document into question blocks and extracts
// choices, the checked answer and metadata from each. Invalid blocks are dropped and
// reported in Stats.ParseErrors.
func Parse(content string, opts Options) Result {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	section := opts.DefaultSection
	if section == "" {
		section = DefaultSection
	}
	if match := sectionPattern.FindStringSubmatch(content); match != nil {
		section = match[1]
	}

	stats := newDebugStats(section)
	var entries []question.Entry

	blocks := questionHeading.Split(content, -1)[1:]
	number := 0
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		number++
		entry, problem := parseBlock(block, number, section, &stats)
		if problem != "" {
			stats.ParseErrors = append(stats.ParseErrors, problem)
			continue
		}
		entries = append(entries, entry)
	}

	stats.TotalQuestions = len(entries)
	stats.Tracks[0].Questions = len(entries)
	return Result{Entries: entries, Stats: stats}
}

// parseBlock turns one question block into an entry, or returns a description of why
// the block was rejected. Multi-answer hits are recorded even for rejected blocks.
func parseBlock(block string, number int, section string, stats *DebugStats) (question.Entry, string) {
	lines := nonBlankLines(block)
	text := lines[0]

	var choices []string
	correctIndex := 1
	for _, line := range lines {
		var choice string
		if match := checkedChoice.FindStringSubmatch(line); match != nil {
			choice = match[2]
			choices = append(choices, choice)
			correctIndex = len(choices)
		} else if match := uncheckedChoice.FindStringSubmatch(line); match != nil {
			choice = match[1]
			choices = append(choices, choice)
		} else {
			continue
		}
		if pattern := DetectMultiAnswer(choice); pattern != "" {
			stats.MultiAnswer = append(stats.MultiAnswer, MultiAnswerHit{
				Question: number,
				Line:     line,
				Choice:   choice,
				Pattern:  pattern,
			})
			stats.KeepPrefix = true
			stats.RandomizationSafe = false
		}
	}

	kind := question.MultipleChoice
	if question.IsTrueFalse(choices) {
		kind = question.TrueFalse
		choices = choices[:2]
	} else {
		choices = question.PadChoices(choices, kind.MinRows())
	}

	if utf8.RuneCountInString(text) < minQuestionLength {
		return question.Entry{}, fmt.Sprintf("Question %d text too short: '%s'", number, text)
	}
	if !question.HasChoice(choices) {
		return question.Entry{}, fmt.Sprintf("Question %d has no valid choices", number)
	}
	if len(choices) > question.MaxChoices {
		return question.Entry{}, fmt.Sprintf("Question %d has %d choices, at most %d are supported", number, len(choices), question.MaxChoices)
	}

	return question.Entry{
		Number:       number,
		Track:        section,
		Type:         kind,
		Text:         text,
		Choices:      choices,
		CorrectIndex: correctIndex,
		AnswerLetter: firstGroup(answerPattern, block, "A"),
		Explanation:  strings.TrimSpace(firstGroup(explanationPattern, block, "")),
		PageRef:      strings.TrimSpace(firstGroup(pagePattern, block, "")),
		SectionID:    strings.TrimSpace(firstGroup(sectionIDPattern, block, "")),
	}, ""
}

func nonBlankLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func firstGroup(pattern *regexp.Regexp, text, fallback string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return fallback
	}
	return match[1]
}
