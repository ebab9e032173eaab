package workbook

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"quizconv/internal/contenthash"
	"quizconv/internal/markdown"
	"quizconv/internal/question"
)

// TestRoundTripPreservesContentHash verifies written workbooks re-extract to the same content.
func TestRoundTripPreservesContentHash(t *testing.T) {
	result := markdown.Parse(sampleDoc, markdown.Options{})
	var buf bytes.Buffer
	if err := Write(&buf, result.Entries, result.Stats); err != nil {
		t.Fatalf("write: %v", err)
	}
	extracted, err := Extract(&buf)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	expected := question.Records(result.Entries)
	if !reflect.DeepEqual(extracted, expected) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", extracted, expected)
	}
	left, err := contenthash.Hash(expected)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	right, err := contenthash.Hash(extracted)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if left != right {
		t.Fatalf("expected equal digests, got %s and %s", left, right)
	}
}

// TestExtractRowsMultipleCorrect verifies several markers join into a letter list.
func TestExtractRowsMultipleCorrect(t *testing.T) {
	rows := [][]string{
		QuestionColumns,
		{"MC", "Pick the vowels", "", "A", "1", "ID", "SRC"},
		{"", "", "", "B"},
		{"", "", "", "E", "1"},
		{"", "", "", "", "1"},
		{},
		{"TF", "Sky is blue", "", "True", "", "ID", "SRC2"},
		{"", "", "", "False", "1"},
	}
	records := ExtractRows(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}
	first := records[0]
	if !reflect.DeepEqual(first.Choices, []string{"A", "B", "E"}) || first.Correct != "A, C" || first.Source != "SRC" {
		t.Fatalf("unexpected first record %+v", first)
	}
	second := records[1]
	if second.Correct != "B" || second.Source != "SRC2" {
		t.Fatalf("unexpected second record %+v", second)
	}
}

// TestExtractRowsIgnoresOrphanAnswers verifies answers before any question are dropped.
func TestExtractRowsIgnoresOrphanAnswers(t *testing.T) {
	rows := [][]string{
		QuestionColumns,
		{"", "", "", "orphan", "1"},
		{"MC", "Real question", "", "", ""},
	}
	records := ExtractRows(rows)
	if len(records) != 1 || len(records[0].Choices) != 0 || records[0].Correct != "" {
		t.Fatalf("unexpected records %+v", records)
	}
	if ExtractRows(nil) != nil {
		t.Fatalf("expected nil records for no rows")
	}
}

// TestExtractMissingSheet verifies workbooks without a Questions sheet are rejected.
func TestExtractMissingSheet(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()
	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("write buffer: %v", err)
	}
	_, err = Extract(buf)
	if !errors.Is(err, ErrMissingSheet) {
		t.Fatalf("expected ErrMissingSheet, got %v", err)
	}
}
