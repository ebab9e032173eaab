package csvquiz

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `PREP Final Exam Export
,,,,,,,
Book Name,Question #,Question Stem,Answer A,Answer B,Answer C,Answer D,Correct Answer
Prep,1,2+2?,3,4,,,B
Prep,,Question Stem,,,,,
Prep,,Chapter 3 Quiz,x,,,,
Prep,,PREP Final Exam Review,x,,,,
Prep,2,Which is blue?,,,,,A
Prep,3,  Which is green?  , grass ,sky,,,a
`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

// TestExtractScenario verifies a single quiz row becomes a padded record.
func TestExtractScenario(t *testing.T) {
	result, err := Extract(strings.NewReader(sampleCSV), DefaultOptions())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(result.Records), result.Records)
	}
	first := result.Records[0]
	if first.Question != "2+2?" {
		t.Fatalf("unexpected question %q", first.Question)
	}
	if !reflect.DeepEqual(first.Choices, []string{"3", "4", "", ""}) {
		t.Fatalf("unexpected choices %+v", first.Choices)
	}
	if first.Correct != "B" {
		t.Fatalf("expected correct B, got %q", first.Correct)
	}
	if first.Source != "PREP FL 1" {
		t.Fatalf("expected source PREP FL 1, got %q", first.Source)
	}

	second := result.Records[1]
	if second.Question != "Which is green?" || second.Choices[0] != "grass" || second.Source != "PREP FL 3" {
		t.Fatalf("expected trimmed second record, got %+v", second)
	}
}

// TestExtractNoiseRowsNeverSurvive verifies noise, stem-less and answer-less rows are skipped.
func TestExtractNoiseRowsNeverSurvive(t *testing.T) {
	result, err := Extract(strings.NewReader(sampleCSV), DefaultOptions())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	for _, record := range result.Records {
		if record.Question == "Question Stem" || strings.Contains(record.Question, "Final Exam") || strings.Contains(record.Question, "Quiz") {
			t.Fatalf("noise row leaked: %+v", record)
		}
	}
	if len(result.Skipped) != 4 {
		t.Fatalf("expected 4 skipped rows, got %+v", result.Skipped)
	}
	if result.Skipped[0].Line != 5 {
		t.Fatalf("expected first skipped row on line 5, got %d", result.Skipped[0].Line)
	}
	if result.Skipped[3].Reason != "no answer columns" {
		t.Fatalf("unexpected reason %q", result.Skipped[3].Reason)
	}
}

// TestExtractBareSourceTag verifies rows without a number get the bare prefix.
func TestExtractBareSourceTag(t *testing.T) {
	content := "title\n\nQuestion #,Question Stem,Answer A,Correct Answer\n,Is water wet?,Yes,A\n"
	result, err := Extract(strings.NewReader(content), DefaultOptions())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0].Source != "PREP FL" {
		t.Fatalf("expected bare source tag, got %+v", result.Records)
	}
}

// TestExtractCustomOptions verifies configurable prefix and noise rules.
func TestExtractCustomOptions(t *testing.T) {
	opts := Options{SourcePrefix: "BANK", Noise: NoiseFilter{Contains: []string{"Review"}}}
	result, err := Extract(strings.NewReader(sampleCSV), opts)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Records[0].Source != "BANK 1" {
		t.Fatalf("expected custom prefix, got %q", result.Records[0].Source)
	}
	for _, record := range result.Records {
		if strings.Contains(record.Question, "Review") {
			t.Fatalf("custom noise row leaked: %+v", record)
		}
	}
}

// TestExtractFileMissing verifies missing files surface os.ErrNotExist.
func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.csv"), DefaultOptions())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

// TestExtractFile verifies file-based extraction matches reader extraction.
func TestExtractFile(t *testing.T) {
	path := writeSample(t, "quiz.csv", sampleCSV)
	result, err := ExtractFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("extract file: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
}

// TestExtractMissingPreamble verifies truncated files are rejected.
func TestExtractMissingPreamble(t *testing.T) {
	_, err := Extract(strings.NewReader("only a title"), DefaultOptions())
	if !errors.Is(err, ErrMissingPreamble) {
		t.Fatalf("expected ErrMissingPreamble, got %v", err)
	}
}

// TestExtractHeaderOnly verifies a file with no data rows yields no records.
func TestExtractHeaderOnly(t *testing.T) {
	result, err := Extract(strings.NewReader("title\n\nQuestion Stem,Answer A\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Records) != 0 {
		t.Fatalf("expected no records, got %+v", result.Records)
	}
}
