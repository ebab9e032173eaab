package csvquiz

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"quizconv/internal/question"
)

// FormattedHeader is the column layout consumed by the downstream converter.
var FormattedHeader = []string{
	"Question", "Choice 1", "Choice 2", "Choice 3", "Choice 4",
	"Correct Answer", "Explanation", "Source",
}

// FormatOptions controls the CSV formatter.
type FormatOptions struct {
	Options
	// Label is "Quiz", "Final" or empty; when empty it is inferred from the input path.
	Label string
}

// FormatResult reports the outcome of a formatting run.
type FormatResult struct {
	Written int
	Label   string
	Skipped []SkippedRow
}

// FormatFile rewrites a quiz export CSV into the converter schema.
func FormatFile(inputPath, outputPath string, opts FormatOptions) (FormatResult, error) {
	if opts.Label == "" {
		opts.Label = InferLabel(inputPath)
	}
	in, err := os.Open(inputPath)
	if err != nil {
		return FormatResult{}, fmt.Errorf("open csv: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return FormatResult{}, fmt.Errorf("create output csv: %w", err)
	}
	result, err := Format(in, out, opts)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output csv: %w", closeErr)
	}
	if err != nil {
		return FormatResult{}, err
	}
	return result, nil
}

// Format reads quiz export rows from r and writes converter rows to w.
func Format(r io.Reader, w io.Writer, opts FormatOptions) (FormatResult, error) {
	prefix := opts.prefix()
	label := NormalizeLabel(opts.Label)

	writer := csv.NewWriter(w)
	if err := writer.Write(FormattedHeader); err != nil {
		return FormatResult{}, fmt.Errorf("write header: %w", err)
	}

	result := FormatResult{Label: label}
	var writeErr error
	skipped, err := scanQuestionRows(r, opts.Options, func(row quizRow) *SkippedRow {
		if writeErr != nil {
			return nil
		}
		answers := row.answers()
		record := question.Record{Question: row.get(ColumnQuestionStem), Choices: answers}
		if err := question.Validate(record); err != nil {
			return &SkippedRow{Line: row.line, Reason: err.Error()}
		}
		fields := []string{record.Question}
		fields = append(fields, answers...)
		fields = append(fields,
			row.get(ColumnCorrectAnswer),
			"",
			FormatSourceTag(prefix, label, row.get(ColumnQuestionNumber)),
		)
		if err := writer.Write(fields); err != nil {
			writeErr = fmt.Errorf("write row %d: %w", row.line, err)
			return nil
		}
		result.Written++
		return nil
	})
	if err != nil {
		return FormatResult{}, err
	}
	if writeErr != nil {
		return FormatResult{}, writeErr
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return FormatResult{}, fmt.Errorf("flush csv: %w", err)
	}
	result.Skipped = skipped
	return result, nil
}
