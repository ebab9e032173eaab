package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"quizconv/internal/markdown"
	"quizconv/internal/question"
	"quizconv/internal/workbook"
)

const quizCSV = `PREP Final Exam Export
,,,,,,,
Book Name,Question #,Question Stem,Answer A,Answer B,Answer C,Answer D,Correct Answer
Prep,1,2+2?,3,4,,,B
Prep,,Question Stem,,,,,
Prep,,Chapter 3 Quiz,x,,,,
Prep,3,Which is green?,grass,sky,sea,,a
`

const quizMarkdown = `## SECTION: GEO-101

### Question 1
Capital of France?
- [ ] London
- [x] Paris
**Answer:** B

### Question 2
The Earth orbits the Sun.
- [x] True
- [ ] False

### Question 3
Hi?
- [x] Yes
`

// matchingEntries mirrors quizCSV as workbook entries.
func matchingEntries() []question.Entry {
	return []question.Entry{
		{Number: 1, Type: question.MultipleChoice, Text: "2+2?", Choices: []string{"3", "4", "", ""}, CorrectIndex: 2, SectionID: "PREP FL 1"},
		{Number: 2, Type: question.MultipleChoice, Text: "Which is green?", Choices: []string{"grass", "sky", "sea", ""}, CorrectIndex: 1, SectionID: "PREP FL 3"},
	}
}

type cliFixture struct {
	dir    string
	config string
}

// newFixture creates a temp workspace with a config that disables color and quiets logs.
func newFixture(t *testing.T) cliFixture {
	t.Helper()
	for _, key := range []string{"QUIZCONV_CONFIG", "QUIZCONV_LOG_LEVEL", "QUIZCONV_LOG_FORMAT", "QUIZCONV_COLOR", "QUIZCONV_SOURCE_PREFIX"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yml")
	body := "color: never\nlogging:\n  level: error\n  format: json\nmarkdown:\n  output_dir: " + filepath.Join(dir, "generated") + "\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cliFixture{dir: dir, config: cfg}
}

func (f cliFixture) path(parts ...string) string {
	return filepath.Join(append([]string{f.dir}, parts...)...)
}

func (f cliFixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := f.path(name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func (f cliFixture) writeWorkbook(t *testing.T, name string, entries []question.Entry) string {
	t.Helper()
	path := f.path(name)
	if err := workbook.WriteFile(path, entries, markdown.DebugStats{}); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return path
}

// run invokes a standalone command with the fixture config.
func (f cliFixture) run(binary string, args ...string) (int, string, string) {
	var out, err bytes.Buffer
	full := append([]string{"--config", f.config}, args...)
	code := RunCommand(binary, full, &out, &err)
	return code, out.String(), err.String()
}
