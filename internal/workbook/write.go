package workbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"quizconv/internal/markdown"
	"quizconv/internal/question"
)

// metaKey is written on every question row.
const metaKey = "ID"

// Build creates the import workbook: a Questions sheet in the one-row-per-choice
// layout and a Debug sheet summarizing the parse run. The caller closes the file.
func Build(entries []question.Entry, stats markdown.DebugStats) (*excelize.File, error) {
	for _, entry := range entries {
		if err := question.Validate(entry); err != nil {
			return nil, fmt.Errorf("question %d: %w", entry.Number, err)
		}
	}

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", QuestionsSheet); err != nil {
		file.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeQuestions(file, entries); err != nil {
		file.Close()
		return nil, err
	}
	if _, err := file.NewSheet(DebugSheet); err != nil {
		file.Close()
		return nil, fmt.Errorf("create debug sheet: %w", err)
	}
	if err := writeDebug(file, entries, stats); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

// Write builds the workbook and serializes it to w.
func Write(w io.Writer, entries []question.Entry, stats markdown.DebugStats) error {
	file, err := Build(entries, stats)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile builds the workbook and saves it to path, creating parent directories.
func WriteFile(path string, entries []question.Entry, stats markdown.DebugStats) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	file, err := Build(entries, stats)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeQuestions(file *excelize.File, entries []question.Entry) error {
	sheet := newSheetWriter(file, QuestionsSheet)
	if err := sheet.header(1, QuestionColumns, "CCCCCC"); err != nil {
		return err
	}
	row := 2
	for _, entry := range entries {
		next, err := writeEntry(sheet, row, entry)
		if err != nil {
			return fmt.Errorf("question %d: %w", entry.Number, err)
		}
		row = next
	}
	return sheet.applyWidths()
}

// writeEntry writes one question starting at row and returns the first row of the
// next question. The question occupies max(len(choices), type minimum) rows followed
// by one blank separator row.
func writeEntry(sheet *sheetWriter, row int, entry question.Entry) (int, error) {
	first := []struct {
		col   int
		value string
	}{
		{colType, string(entry.Type)},
		{colQuestion, entry.Text},
		{colExplanation, entry.Explanation},
		{colMetaKey, metaKey},
		{colMetaValue, entry.MetaValue()},
	}
	for _, cell := range first {
		if err := sheet.set(cell.col+1, row, cell.value); err != nil {
			return 0, err
		}
	}

	for i, choice := range entry.Choices {
		if choice == "" {
			continue
		}
		if err := sheet.set(colAnswer+1, row+i, choice); err != nil {
			return 0, err
		}
		if i == entry.CorrectIndex-1 {
			if err := sheet.set(colCorrect+1, row+i, CorrectMarker); err != nil {
				return 0, err
			}
		}
	}

	used := max(len(entry.Choices), entry.Type.MinRows())
	return row + used + 1, nil
}
