package workbook

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizconv/internal/question"
)

// ErrMissingSheet indicates a workbook without a Questions sheet.
var ErrMissingSheet = errors.New("questions sheet not found in workbook")

// ExtractFile reads question records back from an import workbook on disk.
func ExtractFile(path string) ([]question.Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()
	return extractFrom(file)
}

// Extract reads question records back from serialized workbook content.
func Extract(r io.Reader) ([]question.Record, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()
	return extractFrom(file)
}

func extractFrom(file *excelize.File) ([]question.Record, error) {
	index, err := file.GetSheetIndex(QuestionsSheet)
	if err != nil {
		return nil, fmt.Errorf("lookup %s sheet: %w", QuestionsSheet, err)
	}
	if index < 0 {
		return nil, ErrMissingSheet
	}
	rows, err := file.GetRows(QuestionsSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", QuestionsSheet, err)
	}
	return ExtractRows(rows), nil
}

// openRecord is the question currently being assembled from consecutive rows.
type openRecord struct {
	record  question.Record
	correct []int
}

func (o *openRecord) addChoice(answer string, marked bool) {
	if marked {
		o.correct = append(o.correct, len(o.record.Choices))
	}
	o.record.Choices = append(o.record.Choices, answer)
}

func (o *openRecord) finish() question.Record {
	o.record.Correct = question.IndicesToLetters(o.correct)
	return o.record
}

// ExtractRows reverses the one-row-per-choice layout. The first row is the header.
// A non-empty Question cell opens a new record; later rows with only an Answer cell
// append choices to it, and a Correct cell of "1" marks the choice on that row.
func ExtractRows(rows [][]string) []question.Record {
	var records []question.Record
	var current *openRecord
	if len(rows) == 0 {
		return records
	}
	for _, row := range rows[1:] {
		cells := padRow(row, len(QuestionColumns))
		text := strings.TrimSpace(cells[colQuestion])
		answer := strings.TrimSpace(cells[colAnswer])
		marked := strings.TrimSpace(cells[colCorrect]) == CorrectMarker

		switch {
		case text != "":
			if current != nil {
				records = append(records, current.finish())
			}
			current = &openRecord{record: question.Record{
				Question:    text,
				Explanation: strings.TrimSpace(cells[colExplanation]),
				Source:      strings.TrimSpace(cells[colMetaValue]),
			}}
			if answer != "" {
				current.addChoice(answer, marked)
			}
		case answer != "" && current != nil:
			current.addChoice(answer, marked)
		}
	}
	if current != nil {
		records = append(records, current.finish())
	}
	return records
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
