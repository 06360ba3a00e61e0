package v1

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/types"
)

const JOURNAL_TIMESTAMP_LAYOUT = "2006-01-02T15:04:05.000000"

type JournalLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	return &JournalLogic{
		ctx:  ctx,
		core: core,
	}
}

func ValidateJournalEntry(entry types.JournalEntry) error {
	if strings.TrimSpace(entry.Symptoms) == "" {
		return fmt.Errorf("symptoms are required")
	}
	if entry.Temperature < types.TEMPERATURE_MIN || entry.Temperature > types.TEMPERATURE_MAX {
		return fmt.Errorf("temperature must be between %.1f and %.1f, got %.1f", types.TEMPERATURE_MIN, types.TEMPERATURE_MAX, entry.Temperature)
	}
	if entry.PainLevel < types.PAIN_LEVEL_MIN || entry.PainLevel > types.PAIN_LEVEL_MAX {
		return fmt.Errorf("pain_level must be between %d and %d, got %d", types.PAIN_LEVEL_MIN, types.PAIN_LEVEL_MAX, entry.PainLevel)
	}
	if !types.IsValidMood(entry.Mood) {
		return fmt.Errorf("unknown mood %q", entry.Mood)
	}
	return nil
}

func (l *JournalLogic) Add(entry types.JournalEntry) error {
	if err := ValidateJournalEntry(entry); err != nil {
		return errors.New("JournalLogic.Add.ValidateJournalEntry", i18n.ERROR_INVALIDARGUMENT, err)
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().Format(JOURNAL_TIMESTAMP_LAYOUT)
	}

	if err := l.core.JournalStore().Append(entry); err != nil {
		return errors.New("JournalLogic.Add.JournalStore.Append", i18n.ERROR_STORAGE, err)
	}
	return nil
}

func (l *JournalLogic) List() []types.JournalEntry {
	return l.core.JournalStore().Load()
}

func (l *JournalLogic) Reset() error {
	if err := l.core.JournalStore().Reset(); err != nil {
		return errors.New("JournalLogic.Reset.JournalStore.Reset", i18n.ERROR_STORAGE, err)
	}
	return nil
}
