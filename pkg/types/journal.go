package types

import "github.com/samber/lo"

const (
	MOOD_GOOD      = "😊 Good"
	MOOD_NEUTRAL   = "😐 Neutral"
	MOOD_POOR      = "😔 Poor"
	MOOD_VERY_POOR = "😣 Very Poor"
)

var Moods = []string{MOOD_GOOD, MOOD_NEUTRAL, MOOD_POOR, MOOD_VERY_POOR}

func IsValidMood(mood string) bool {
	return lo.Contains(Moods, mood)
}

const (
	TEMPERATURE_MIN = 95.0
	TEMPERATURE_MAX = 105.0
	PAIN_LEVEL_MIN  = 1
	PAIN_LEVEL_MAX  = 10
)

// JournalEntry is one patient-reported journal submission. Entries are never
// mutated once saved.
type JournalEntry struct {
	Timestamp   string  `json:"timestamp"`
	Title       string  `json:"title,omitempty"`
	UserName    string  `json:"user_name"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	PainLevel   int     `json:"pain_level"`
	Symptoms    string  `json:"symptoms"`
	Medications string  `json:"medications,omitempty"`
	Mood        string  `json:"mood"`
	Notes       string  `json:"notes,omitempty"`
}
