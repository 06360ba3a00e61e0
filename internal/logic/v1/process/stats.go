package process

import (
	"context"
	"log/slog"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/register"
)

type StatsProcess struct {
	core *core.Core
}

func NewStatsProcess(core *core.Core) *StatsProcess {
	return &StatsProcess{core: core}
}

// Refresh copies the current table sizes into the store gauges.
func (p *StatsProcess) Refresh(ctx context.Context) error {
	qa, err := p.core.Store().MedicalQAStore().Total(ctx)
	if err != nil {
		return err
	}
	records, err := p.core.Store().PatientRecordStore().Total(ctx)
	if err != nil {
		return err
	}

	p.core.Metrics().KnowledgeEntries.Set(float64(qa))
	p.core.Metrics().PatientRecordRows.Set(float64(records))
	return nil
}

func init() {
	register.RegisterFunc(ProcessKey{}, func(provider *Process) {
		spec := provider.Core().Cfg().Process.StatsSpec
		job := NewStatsProcess(provider.Core())
		if _, err := provider.Cron().AddFunc(spec, func() {
			if err := job.Refresh(context.Background()); err != nil {
				slog.Error("failed to refresh store stats", slog.String("error", err.Error()))
			}
		}); err != nil {
			slog.Error("failed to schedule store stats", slog.String("spec", spec), slog.String("error", err.Error()))
		}
	})
}
