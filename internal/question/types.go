package question

// Type identifies the import template question type.
type Type string

const (
	MultipleChoice Type = "MC"
	TrueFalse      Type = "TF"
)

// MaxChoices is the largest number of answer choices a question may carry.
const MaxChoices = 6

// MinRows returns the minimum number of answer rows a question of this type occupies
// in the import template.
func (t Type) MinRows() int {
	if t == TrueFalse {
		return 2
	}
	return 4
}

// Record is the format-independent form of a question used for hashing and comparison.
type Record struct {
	Question    string   `json:"question" validate:"required"`
	Choices     []string `json:"choices" validate:"max=6,has_choice"`
	Correct     string   `json:"correct_answer"`
	Explanation string   `json:"explanation,omitempty"`
	Source      string   `json:"source"`
}

// Entry is a question parsed from standardized markdown, bound for the import template.
type Entry struct {
	Number       int      `json:"question_number"`
	Track        string   `json:"track"`
	Type         Type     `json:"question_type" validate:"oneof=MC TF"`
	Text         string   `json:"question" validate:"required"`
	Choices      []string `json:"answers" validate:"max=6,has_choice"`
	CorrectIndex int      `json:"correct" validate:"min=1"`
	AnswerLetter string   `json:"answer_letter"`
	Explanation  string   `json:"explanation"`
	PageRef      string   `json:"page_reference"`
	SectionID    string   `json:"section_id"`
}

// MetaValue returns the value written to the Meta Value column.
func (e Entry) MetaValue() string {
	if e.SectionID != "" {
		return e.SectionID
	}
	return e.Track
}

// Record projects the entry onto a Record as the import template would carry it:
// empty choices vanish and the correct letter follows the checked choice.
func (e Entry) Record() Record {
	choices := make([]string, 0, len(e.Choices))
	correct := ""
	for i, choice := range e.Choices {
		if choice == "" {
			continue
		}
		if i == e.CorrectIndex-1 {
			correct = IndexLetter(len(choices))
		}
		choices = append(choices, choice)
	}
	return Record{
		Question:    e.Text,
		Choices:     choices,
		Correct:     correct,
		Explanation: e.Explanation,
		Source:      e.MetaValue(),
	}
}

// Records projects a slice of entries.
func Records(entries []Entry) []Record {
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entry.Record())
	}
	return records
}
