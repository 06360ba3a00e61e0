package types

// MedicalQA is a single question/answer row imported from a MedQuAD document.
type MedicalQA struct {
	ID           int64  `json:"-" db:"id"`
	DocumentID   string `json:"document_id" db:"document_id"`
	Focus        string `json:"focus" db:"focus"`
	Source       string `json:"source" db:"source"`
	QuestionID   string `json:"question_id" db:"question_id"`
	QuestionType string `json:"question_type" db:"question_type"`
	Question     string `json:"question" db:"question"`
	Answer       string `json:"answer" db:"answer"`
	CreatedAt    int64  `json:"-" db:"created_at"`
}

type SearchQAOptions struct {
	Query        string
	QuestionType string
	Limit        uint64
}

const (
	DEFAULT_CONTEXT_LIMIT = 5
	SEARCH_QA_LIMIT       = 10
)

// ContextBundle is what gets handed to the model next to a query. It is never stored.
type ContextBundle struct {
	QA      []MedicalQA `json:"qa"`
	History string      `json:"history"`
}
