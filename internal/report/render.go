package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass  = lipgloss.Color("42")
	colorFail  = lipgloss.Color("196")
	colorTitle = lipgloss.Color("39")
	colorMuted = lipgloss.Color("244")
)

var rule = strings.Repeat("=", 60)

// RenderValidation writes the human-readable validation summary.
func RenderValidation(w io.Writer, result Validation, noColor bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", rule, stylize("CONTENT VALIDATION RESULTS", noColor, colorTitle, true), rule)
	fmt.Fprintf(&b, "Original CSV: %s\n", filepath.Base(result.OriginalFile))
	fmt.Fprintf(&b, "Converted XLSX: %s\n", filepath.Base(result.ConvertedFile))
	fmt.Fprintf(&b, "Original Questions: %d\n", result.OriginalCount)
	fmt.Fprintf(&b, "Converted Questions: %d\n", result.ConvertedCount)
	fmt.Fprintf(&b, "Question Count Match: %s\n", check(formatMatch(result.CountMatch), result.CountMatch, noColor))
	fmt.Fprintf(&b, "Content Hash Match: %s\n", check(formatMatch(result.HashMatch), result.HashMatch, noColor))
	fmt.Fprintf(&b, "Overall Validation: %s\n", check(passFail(result.Passed), result.Passed, noColor))
	if !result.Passed {
		b.WriteString("\nDifferences found:\n")
		for _, diff := range result.Differences {
			fmt.Fprintf(&b, "  - %s\n", diff)
		}
	}
	b.WriteString(rule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHash writes the summary printed after fingerprinting a file.
func RenderHash(w io.Writer, record HashRecord, savedTo string, noColor bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", check(fmt.Sprintf("Hash generated for %d questions", record.QuestionCount), true, noColor))
	fmt.Fprintf(&b, "Hash: %s\n", record.ContentHash)
	fmt.Fprintf(&b, "Saved to: %s\n", savedTo)
	fmt.Fprintf(&b, "%s\n", stylize("Run: "+record.RunID, noColor, colorMuted, false))
	_, err := io.WriteString(w, b.String())
	return err
}

// Success renders a green status line.
func Success(text string, noColor bool) string {
	return check(text, true, noColor)
}

// Failure renders a red status line.
func Failure(text string, noColor bool) string {
	return check(text, false, noColor)
}

func passFail(ok bool) string {
	if ok {
		return "PASSED"
	}
	return "FAILED"
}

func check(text string, ok bool, noColor bool) string {
	if ok {
		return stylize(text, noColor, colorPass, true)
	}
	return stylize(text, noColor, colorFail, true)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
