package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/pkg/types"
)

func validEntry() types.JournalEntry {
	return types.JournalEntry{
		Title:       "Monday",
		UserName:    "Patient Name",
		Condition:   "flu",
		Temperature: 98.6,
		PainLevel:   3,
		Symptoms:    "sore throat",
		Mood:        types.MOOD_POOR,
	}
}

func Test_ValidateJournalEntry(t *testing.T) {
	assert.NoError(t, v1.ValidateJournalEntry(validEntry()))

	cases := map[string]func(e *types.JournalEntry){
		"empty symptoms":  func(e *types.JournalEntry) { e.Symptoms = "  " },
		"too cold":        func(e *types.JournalEntry) { e.Temperature = 94.9 },
		"too hot":         func(e *types.JournalEntry) { e.Temperature = 105.1 },
		"no pain level":   func(e *types.JournalEntry) { e.PainLevel = 0 },
		"pain level high": func(e *types.JournalEntry) { e.PainLevel = 11 },
		"unknown mood":    func(e *types.JournalEntry) { e.Mood = "Good" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			e := validEntry()
			mutate(&e)
			assert.Error(t, v1.ValidateJournalEntry(e))
		})
	}

	e := validEntry()
	e.Temperature = types.TEMPERATURE_MAX
	e.PainLevel = types.PAIN_LEVEL_MAX
	assert.NoError(t, v1.ValidateJournalEntry(e))
}

func Test_JournalLogic(t *testing.T) {
	c, _ := setupCore(t)
	logic := v1.NewJournalLogic(ctx, c)

	require.NoError(t, logic.Add(validEntry()))
	second := validEntry()
	second.Symptoms = "cough"
	second.Timestamp = "2026-10-17T08:00:00"
	require.NoError(t, logic.Add(second))

	invalid := validEntry()
	invalid.Mood = ""
	assert.Error(t, logic.Add(invalid))

	list := logic.List()
	require.Len(t, list, 2)
	assert.Equal(t, "sore throat", list[0].Symptoms)
	assert.NotEmpty(t, list[0].Timestamp)
	assert.Equal(t, "2026-10-17T08:00:00", list[1].Timestamp)

	require.NoError(t, logic.Reset())
	assert.Empty(t, logic.List())
	require.NoError(t, logic.Reset())
	assert.Empty(t, logic.List())
}
