package workbook

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the import template.
const (
	QuestionsSheet = "Questions"
	DebugSheet     = "Debug"
)

// QuestionColumns is the fixed header of the Questions sheet.
var QuestionColumns = []string{"Type", "Question", "Explanation", "Answer", "Correct", "Meta Key", "Meta Value"}

// 0-based positions within QuestionColumns.
const (
	colType = iota
	colQuestion
	colExplanation
	colAnswer
	colCorrect
	colMetaKey
	colMetaValue
)

// CorrectMarker flags the correct choice row.
const CorrectMarker = "1"

// maxColumnWidth caps auto-sized columns, in characters.
const maxColumnWidth = 50

// sheetWriter writes cells to one sheet and remembers the widest value per column.
type sheetWriter struct {
	file   *excelize.File
	name   string
	widths map[int]int
}

func newSheetWriter(file *excelize.File, name string) *sheetWriter {
	return &sheetWriter{file: file, name: name, widths: map[int]int{}}
}

// set writes a value to a 1-based column and row. Empty strings are not written.
func (s *sheetWriter) set(col, row int, value any) error {
	if text, ok := value.(string); ok && text == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := s.file.SetCellValue(s.name, cell, value); err != nil {
		return fmt.Errorf("set %s!%s: %w", s.name, cell, err)
	}
	if length := utf8.RuneCountInString(fmt.Sprint(value)); length > s.widths[col] {
		s.widths[col] = length
	}
	return nil
}

// header writes a styled header row starting at column 1.
func (s *sheetWriter) header(row int, titles []string, fill string) error {
	style, err := s.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	for i, title := range titles {
		if err := s.set(i+1, row, title); err != nil {
			return err
		}
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(titles), row)
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(s.name, first, last, style)
}

// applyWidths sizes every written column to its longest value plus padding, capped.
func (s *sheetWriter) applyWidths() error {
	for col, length := range s.widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := s.file.SetColWidth(s.name, name, name, float64(columnWidth(length))); err != nil {
			return fmt.Errorf("set width of %s!%s: %w", s.name, name, err)
		}
	}
	return nil
}

func columnWidth(length int) int {
	return min(length+2, maxColumnWidth)
}
