package v1

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/types"
)

type ContextLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewContextLogic(ctx context.Context, core *core.Core) *ContextLogic {
	return &ContextLogic{
		ctx:  ctx,
		core: core,
	}
}

// Assemble collects the knowledge entries matching query and the latest patient history.
func (l *ContextLogic) Assemble(query string, limit int) (*types.ContextBundle, error) {
	if limit <= 0 {
		limit = types.DEFAULT_CONTEXT_LIMIT
	}

	qa, err := l.core.Store().MedicalQAStore().Search(l.ctx, types.SearchQAOptions{
		Query: query,
		Limit: uint64(limit),
	})
	if err != nil {
		return nil, errors.New("ContextLogic.Assemble.MedicalQAStore.Search", i18n.ERROR_STORAGE, err)
	}

	records, err := l.core.Store().PatientRecordStore().ListRecent(l.ctx, types.PATIENT_HISTORY_SIZE)
	if err != nil {
		return nil, errors.New("ContextLogic.Assemble.PatientRecordStore.ListRecent", i18n.ERROR_STORAGE, err)
	}

	return &types.ContextBundle{
		QA: lo.Ternary(qa == nil, []types.MedicalQA{}, qa),
		History: strings.Join(lo.Map(records, func(item types.PatientRecord, _ int) string {
			return item.RawText
		}), "\n"),
	}, nil
}
