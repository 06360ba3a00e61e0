package types

// PatientRecord is one raw text submission.
type PatientRecord struct {
	ID        int64  `json:"id,omitempty" db:"id"`
	Timestamp string `json:"timestamp" db:"timestamp"`
	RawText   string `json:"raw_text" db:"raw_text"`
	Lang      string `json:"lang,omitempty" db:"lang"`
	CreatedAt int64  `json:"created_at,omitempty" db:"created_at"`
}

const PATIENT_HISTORY_SIZE = 5
