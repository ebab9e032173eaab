package question

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateRecord verifies record invariants.
func TestValidateRecord(t *testing.T) {
	valid := Record{Question: "2+2?", Choices: []string{"3", "4", "", ""}, Correct: "B"}
	if err := Validate(valid); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	err := Validate(Record{Question: "", Choices: []string{"", " "}})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", validationErr.Issues)
	}
	if !strings.Contains(err.Error(), "question: is required") {
		t.Fatalf("expected question issue, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "choices: must include at least one non-empty choice") {
		t.Fatalf("expected choices issue, got %q", err.Error())
	}
}

// TestValidateRecordTooManyChoices verifies the six-choice ceiling.
func TestValidateRecordTooManyChoices(t *testing.T) {
	record := Record{Question: "Pick one", Choices: []string{"a", "b", "c", "d", "e", "f", "g"}}
	err := Validate(record)
	if err == nil || !strings.Contains(err.Error(), "at most 6") {
		t.Fatalf("expected max choices error, got %v", err)
	}
}

// TestValidateEntryCorrectIndex verifies the correct index must address a choice.
func TestValidateEntryCorrectIndex(t *testing.T) {
	entry := Entry{Type: MultipleChoice, Text: "Question?", Choices: []string{"a", "b"}, CorrectIndex: 3}
	err := Validate(entry)
	if err == nil || !strings.Contains(err.Error(), "correct") {
		t.Fatalf("expected correct index error, got %v", err)
	}
}
