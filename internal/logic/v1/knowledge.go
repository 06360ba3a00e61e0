package v1

import (
	"context"
	"io"
	"log/slog"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
	"github.com/breeew/aicare-api/pkg/medquad"
	"github.com/breeew/aicare-api/pkg/types"
)

type KnowledgeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewKnowledgeLogic(ctx context.Context, core *core.Core) *KnowledgeLogic {
	return &KnowledgeLogic{
		ctx:  ctx,
		core: core,
	}
}

// Import loads one MedQuAD document. Either every entry is stored or none is.
func (l *KnowledgeLogic) Import(r io.Reader) (int, error) {
	doc, err := medquad.Parse(r)
	if err != nil {
		return 0, errors.New("KnowledgeLogic.Import.medquad.Parse", i18n.ERROR_PARSE_DOCUMENT, err)
	}

	entries := doc.Entries()
	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().MedicalQAStore().BatchCreate(ctx, entries); err != nil {
			return errors.New("KnowledgeLogic.Import.MedicalQAStore.BatchCreate", i18n.ERROR_STORAGE, err)
		}
		return nil
	})
	if err != nil {
		return 0, errors.Trace("KnowledgeLogic.Import", err)
	}

	l.core.Metrics().KnowledgeImported.Add(float64(len(entries)))
	slog.Info("medquad document imported", slog.String("document_id", doc.ID), slog.String("focus", doc.Focus), slog.Int("count", len(entries)))
	return len(entries), nil
}

// Search returns at most 10 entries containing query, optionally of one question type.
func (l *KnowledgeLogic) Search(query, questionType string) ([]types.MedicalQA, error) {
	list, err := l.core.Store().MedicalQAStore().Search(l.ctx, types.SearchQAOptions{
		Query:        query,
		QuestionType: questionType,
		Limit:        types.SEARCH_QA_LIMIT,
	})
	if err != nil {
		return nil, errors.New("KnowledgeLogic.Search.MedicalQAStore.Search", i18n.ERROR_STORAGE, err)
	}
	if list == nil {
		list = []types.MedicalQA{}
	}
	return list, nil
}
