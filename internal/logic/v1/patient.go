package v1

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/types"
	"github.com/breeew/aicare-api/pkg/utils"
)

const (
	SINK_RECORD_LOG = "record_log"
	SINK_DATABASE   = "database"
)

type PatientLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewPatientLogic(ctx context.Context, core *core.Core) *PatientLogic {
	return &PatientLogic{
		ctx:  ctx,
		core: core,
	}
}

func NewPatientRecord(text string) types.PatientRecord {
	return types.PatientRecord{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RawText:   text,
		Lang:      utils.DetectLang(text).Code,
	}
}

// SubmitText appends text to the record log.
func (l *PatientLogic) SubmitText(text string) error {
	if err := l.core.RecordLog().Append(NewPatientRecord(text)); err != nil {
		return errors.New("PatientLogic.SubmitText.RecordLog.Append", i18n.ERROR_STORAGE, err)
	}
	l.core.Metrics().PatientRecords.WithLabelValues(SINK_RECORD_LOG).Inc()
	return nil
}

// Reset empties the patient record table and then the record log. A log failure after
// the table was cleared is logged as a partial reset and returned.
func (l *PatientLogic) Reset() error {
	if err := l.core.Store().PatientRecordStore().Reset(l.ctx); err != nil {
		return errors.New("PatientLogic.Reset.PatientRecordStore.Reset", i18n.ERROR_STORAGE, err)
	}
	if err := l.core.RecordLog().Reset(); err != nil {
		slog.Error("patient records partially reset, table cleared but record log kept",
			slog.String("path", l.core.Cfg().Storage.RecordLogPath),
			slog.String("error", err.Error()))
		return errors.New("PatientLogic.Reset.RecordLog.Reset", i18n.ERROR_STORAGE, err)
	}
	return nil
}

// History joins every logged submission in file order.
func (l *PatientLogic) History() (string, error) {
	list, err := l.core.RecordLog().Load()
	if err != nil {
		return "", errors.New("PatientLogic.History.RecordLog.Load", i18n.ERROR_STORAGE, err)
	}
	return strings.Join(lo.Map(list, func(item types.PatientRecord, _ int) string {
		return item.RawText
	}), "\n"), nil
}

func (l *PatientLogic) SummaryAndQuestions(text string) (*types.SummaryResult, error) {
	if err := l.SubmitText(text); err != nil {
		return nil, errors.Trace("PatientLogic.SummaryAndQuestions", err)
	}

	history, err := l.History()
	if err != nil {
		return nil, errors.Trace("PatientLogic.SummaryAndQuestions", err)
	}

	res, err := NewSummaryLogic(l.ctx, l.core).Summarize(history)
	if err != nil {
		return nil, errors.Trace("PatientLogic.SummaryAndQuestions", err)
	}
	return res, nil
}

// AddPatientData writes one record to the table and the record log as a single unit.
// The log append runs inside the transaction, so only a failed commit can leave the
// log ahead of the table.
func (l *PatientLogic) AddPatientData(text string) error {
	record := NewPatientRecord(text)
	record.ID = utils.GenSpecID()
	record.CreatedAt = time.Now().UnixMilli()

	var logged bool
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().PatientRecordStore().Create(ctx, record); err != nil {
			return errors.New("PatientLogic.AddPatientData.PatientRecordStore.Create", i18n.ERROR_STORAGE, err)
		}
		if err := l.core.RecordLog().Append(record); err != nil {
			return errors.New("PatientLogic.AddPatientData.RecordLog.Append", i18n.ERROR_STORAGE, err)
		}
		logged = true
		return nil
	})
	if err != nil {
		if logged {
			slog.Error("patient record partially written, record log is ahead of the database",
				slog.Int64("id", record.ID),
				slog.String("timestamp", record.Timestamp),
				slog.String("error", err.Error()))
		}
		return errors.Trace("PatientLogic.AddPatientData", err)
	}

	l.core.Metrics().PatientRecords.WithLabelValues(SINK_DATABASE).Inc()
	l.core.Metrics().PatientRecords.WithLabelValues(SINK_RECORD_LOG).Inc()
	return nil
}
