package csvquiz

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column names of the quiz export schema.
const (
	ColumnBookName       = "Book Name"
	ColumnQuestionNumber = "Question #"
	ColumnQuestionStem   = "Question Stem"
	ColumnCorrectAnswer  = "Correct Answer"
)

// AnswerColumns lists the answer columns in choice order.
var AnswerColumns = []string{"Answer A", "Answer B", "Answer C", "Answer D"}

// preambleLines is the number of lines (title, blank) preceding the header.
const preambleLines = 2

// ErrMissingPreamble indicates the file ended before the title and blank lines.
var ErrMissingPreamble = errors.New("csv ended before the two-line preamble")

// SkippedRow records a row that was dropped and why.
type SkippedRow struct {
	Line   int
	Reason string
}

// quizRow is a header-keyed view over one CSV record.
type quizRow struct {
	line    int
	columns map[string]int
	fields  []string
}

// get returns the trimmed value of a column, or "" when absent.
func (row quizRow) get(name string) string {
	index, ok := row.columns[name]
	if !ok || index >= len(row.fields) {
		return ""
	}
	return strings.TrimSpace(row.fields[index])
}

func (row quizRow) answers() []string {
	answers := make([]string, 0, len(AnswerColumns))
	for _, column := range AnswerColumns {
		answers = append(answers, row.get(column))
	}
	return answers
}

// scanQuestionRows skips the preamble, reads header-keyed rows and calls fn for every
// row that survives the stem, noise and answer filters. Dropped rows are returned.
func scanQuestionRows(r io.Reader, opts Options, fn func(row quizRow) *SkippedRow) ([]SkippedRow, error) {
	buffered := bufio.NewReader(r)
	for i := 0; i < preambleLines; i++ {
		if _, err := buffered.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrMissingPreamble
			}
			return nil, fmt.Errorf("read preamble: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var skipped []SkippedRow
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped = append(skipped, SkippedRow{Line: parseErr.StartLine + preambleLines, Reason: parseErr.Err.Error()})
				continue
			}
			return skipped, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		line += preambleLines
		row := quizRow{line: line, columns: columns, fields: fields}
		if reason := filterReason(row, opts.Noise); reason != "" {
			skipped = append(skipped, SkippedRow{Line: line, Reason: reason})
			continue
		}
		if skip := fn(row); skip != nil {
			skipped = append(skipped, *skip)
		}
	}
	return skipped, nil
}

func filterReason(row quizRow, noise NoiseFilter) string {
	stem := row.get(ColumnQuestionStem)
	if stem == "" {
		return "missing question stem"
	}
	if noise.IsNoise(stem) {
		return fmt.Sprintf("noise row %q", stem)
	}
	for _, answer := range row.answers() {
		if answer != "" {
			return ""
		}
	}
	return "no answer columns"
}
