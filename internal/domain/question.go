package domain

// QuestionType - answer shape of a question
type QuestionType string

const (
	QuestionFreeText QuestionType = "free_text"
	QuestionChoice   QuestionType = "choice"
)

// Question is one prompt in a session's fixed sequence. The sequence is
// never reordered or resized after creation.
type Question struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	// ReferenceOption is set for trivia questions only: the option index the
	// template authors expect. It is an authored opinion, not verified truth.
	ReferenceOption *int   `json:"reference_option,omitempty"`
	Category        string `json:"category,omitempty"`
}

func (q Question) clone() Question {
	cp := q
	if q.Options != nil {
		cp.Options = append([]string(nil), q.Options...)
	}
	if q.ReferenceOption != nil {
		v := *q.ReferenceOption
		cp.ReferenceOption = &v
	}
	return cp
}

// ValidAnswer reports whether an answer value is acceptable for this
// question: non-empty text for free-text, an in-range option index for
// choice.
func (q Question) ValidAnswer(a Answer) bool {
	switch q.Type {
	case QuestionFreeText:
		return a.Text != ""
	case QuestionChoice:
		return a.Option != nil && *a.Option >= 0 && *a.Option < len(q.Options)
	}
	return false
}
