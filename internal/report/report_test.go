package report

import (
	"strings"
	"testing"
	"time"

	"quizconv/internal/question"
)

func fixedClock(t *testing.T) {
	t.Helper()
	prevNow, prevID := now, newRunID
	now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
	newRunID = func() string { return "run-1" }
	t.Cleanup(func() { now, newRunID = prevNow, prevID })
}

func records() []question.Record {
	return []question.Record{
		{Question: "2+2?", Choices: []string{"3", "4"}, Correct: "B", Source: "PREP FL 1"},
		{Question: "Capital of France?", Choices: []string{"London", "Paris"}, Correct: "B", Source: "PREP FL 2"},
	}
}

// TestValidateMatchingSets verifies identical content passes without differences.
func TestValidateMatchingSets(t *testing.T) {
	fixedClock(t)
	converted := records()
	converted[0].Question = "  2+2?  "
	converted[1].Choices = []string{"LONDON", "paris"}

	result, err := Validate("orig.csv", "conv.xlsx", records(), converted)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Passed || !result.HashMatch || !result.CountMatch {
		t.Fatalf("expected passing validation, got %+v", result)
	}
	if result.OriginalHash != result.ConvertedHash {
		t.Fatalf("expected equal hashes")
	}
	if result.Differences != nil {
		t.Fatalf("expected no differences, got %v", result.Differences)
	}
	if result.RunID != "run-1" || result.GeneratedAt != "2024-03-01T09:30:00Z" {
		t.Fatalf("unexpected run metadata %q %q", result.RunID, result.GeneratedAt)
	}
}

// TestValidateReportsDifferences verifies mismatches carry difference messages.
func TestValidateReportsDifferences(t *testing.T) {
	fixedClock(t)
	converted := records()[:1]
	converted[0].Correct = "A"

	result, err := Validate("orig.csv", "conv.xlsx", records(), converted)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Passed || result.HashMatch || result.CountMatch {
		t.Fatalf("expected failing validation, got %+v", result)
	}
	want := []string{
		"Questions missing in converted file: 1",
		"Correct answer mismatch in question: 2+2?...",
	}
	if strings.Join(result.Differences, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected differences %v", result.Differences)
	}
}

// TestNewHashRecord verifies hash records carry the count, digest and run metadata.
func TestNewHashRecord(t *testing.T) {
	fixedClock(t)
	record, err := NewHashRecord("input.csv", records()[:1])
	if err != nil {
		t.Fatalf("hash record: %v", err)
	}
	if record.QuestionCount != 1 || record.File != "input.csv" {
		t.Fatalf("unexpected record %+v", record)
	}
	if record.ContentHash != "f83eef29360c64e5d007c06b6b10d0636880ea26c3d6f2f81e3ee1ee2a44f3e9" {
		t.Fatalf("unexpected digest %s", record.ContentHash)
	}
	if record.Timestamp != "2024-03-01T09:30:00Z" || record.RunID != "run-1" {
		t.Fatalf("unexpected metadata %+v", record)
	}
}
