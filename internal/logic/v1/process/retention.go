package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/register"
)

const RETENTION_SPEC = "0 4 * * *"

type RetentionProcess struct {
	core *core.Core
	days int
}

func NewRetentionProcess(core *core.Core, days int) *RetentionProcess {
	return &RetentionProcess{core: core, days: days}
}

// ClearExpiredRecords drops patient records older than the retention window.
// The append-only record log is left alone.
func (p *RetentionProcess) ClearExpiredRecords(ctx context.Context, now time.Time) (int64, error) {
	if p.days <= 0 {
		return 0, nil
	}
	deadline := now.AddDate(0, 0, -p.days).UnixMilli()
	return p.core.Store().PatientRecordStore().DeleteBefore(ctx, deadline)
}

func init() {
	register.RegisterFunc(ProcessKey{}, func(provider *Process) {
		days := provider.Core().Cfg().Process.RecordRetentionDays
		if days <= 0 {
			return
		}
		job := NewRetentionProcess(provider.Core(), days)
		if _, err := provider.Cron().AddFunc(RETENTION_SPEC, func() {
			n, err := job.ClearExpiredRecords(context.Background(), time.Now())
			if err != nil {
				slog.Error("failed to clear expired patient records", slog.String("error", err.Error()))
				return
			}
			slog.Info("expired patient records cleared", slog.Int64("deleted", n), slog.Int("retention_days", days))
		}); err != nil {
			slog.Error("failed to schedule patient record retention", slog.String("spec", RETENTION_SPEC), slog.String("error", err.Error()))
		}
	})
}
