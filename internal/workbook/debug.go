package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizconv/internal/markdown"
	"quizconv/internal/question"
)

// previewLength is the number of question characters shown in the Debug sheet.
const previewLength = 50

var previewColumns = []string{"Track", "Q#", "Question Preview", "Correct Answer", "Page Ref", "Has Explanation"}

func writeDebug(file *excelize.File, entries []question.Entry, stats markdown.DebugStats) error {
	sheet := newSheetWriter(file, DebugSheet)
	if err := sheet.header(1, []string{"Metric", "Value"}, "FFFF99"); err != nil {
		return err
	}

	row := 2
	metrics := []struct {
		name  string
		value any
	}{
		{"Total Questions Parsed", stats.TotalQuestions},
		{"Total Tracks Found", len(stats.Tracks)},
		{"Keep Answer Prefixes", yesNo(stats.KeepPrefix)},
		{"Answer Randomization Safe", yesNo(stats.RandomizationSafe)},
		{"Multi-Answer Patterns Found", len(stats.MultiAnswer)},
		{"Parsing Errors", len(stats.ParseErrors)},
		{"", ""},
		{"Track Details", ""},
	}
	for _, metric := range metrics {
		if err := setPair(sheet, row, metric.name, metric.value); err != nil {
			return err
		}
		row++
	}

	for _, track := range stats.Tracks {
		if err := setPair(sheet, row, "  "+track.Name, fmt.Sprintf("%d questions", track.Questions)); err != nil {
			return err
		}
		row++
	}

	if len(stats.MultiAnswer) > 0 {
		lines := make([]string, 0, len(stats.MultiAnswer))
		for _, hit := range stats.MultiAnswer {
			lines = append(lines, fmt.Sprintf("  Question %d: %s", hit.Question, hit.Choice))
		}
		next, err := writeListing(sheet, row+1, "Multi-Answer Patterns Found:", lines)
		if err != nil {
			return err
		}
		row = next
	}

	if len(stats.ParseErrors) > 0 {
		lines := make([]string, 0, len(stats.ParseErrors))
		for _, problem := range stats.ParseErrors {
			lines = append(lines, "  "+problem)
		}
		next, err := writeListing(sheet, row+1, "Parsing Errors:", lines)
		if err != nil {
			return err
		}
		row = next
	}

	row += 2
	if err := sheet.header(row, previewColumns, "DDDDDD"); err != nil {
		return err
	}
	row++
	for _, entry := range entries {
		values := []string{
			entry.Track,
			strconv.Itoa(entry.Number),
			preview(entry.Text),
			entry.AnswerLetter,
			entry.PageRef,
			yesNo(strings.TrimSpace(entry.Explanation) != ""),
		}
		for i, value := range values {
			if err := sheet.set(i+1, row, value); err != nil {
				return err
			}
		}
		row++
	}

	return sheet.applyWidths()
}

func writeListing(sheet *sheetWriter, row int, title string, lines []string) (int, error) {
	if err := sheet.set(1, row, title); err != nil {
		return 0, err
	}
	row++
	for _, line := range lines {
		if err := sheet.set(1, row, line); err != nil {
			return 0, err
		}
		row++
	}
	return row, nil
}

func setPair(sheet *sheetWriter, row int, name string, value any) error {
	if err := sheet.set(1, row, name); err != nil {
		return err
	}
	return sheet.set(2, row, value)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
