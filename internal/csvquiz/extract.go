package csvquiz

import (
	"fmt"
	"io"
	"os"

	"quizconv/internal/question"
)

// Result holds the records extracted from a quiz CSV and the rows that were dropped.
type Result struct {
	Records []question.Record
	Skipped []SkippedRow
}

// ExtractFile reads quiz records from a CSV file. A missing file yields an error
// wrapping os.ErrNotExist.
func ExtractFile(path string, opts Options) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()
	result, err := Extract(file, opts)
	if err != nil {
		return Result{}, fmt.Errorf("extract %s: %w", path, err)
	}
	return result, nil
}

// Extract reads quiz records from CSV content with a two-line preamble followed by a
// header row. Malformed and noise rows are skipped, never fatal.
func Extract(r io.Reader, opts Options) (Result, error) {
	prefix := opts.prefix()
	var records []question.Record
	skipped, err := scanQuestionRows(r, opts, func(row quizRow) *SkippedRow {
		record := question.Record{
			Question: row.get(ColumnQuestionStem),
			Choices:  row.answers(),
			Correct:  row.get(ColumnCorrectAnswer),
			Source:   ExtractSourceTag(prefix, row.get(ColumnQuestionNumber)),
		}
		if err := question.Validate(record); err != nil {
			return &SkippedRow{Line: row.line, Reason: err.Error()}
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Records: records, Skipped: skipped}, nil
}
