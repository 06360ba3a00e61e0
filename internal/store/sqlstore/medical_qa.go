package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/breeew/aicare-api/pkg/register"
	"github.com/breeew/aicare-api/pkg/types"
	"github.com/breeew/aicare-api/pkg/utils"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.MedicalQAStore = NewMedicalQAStore(provider)
	})
}

type MedicalQAStore struct {
	CommonFields
}

func NewMedicalQAStore(provider SqlProviderAchieve) *MedicalQAStore {
	repo := &MedicalQAStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_MEDICAL_QA)
	repo.SetAllColumns("id", "document_id", "focus", "source", "question_id", "question_type", "question", "answer", "created_at")
	return repo
}

const batchInsertSize = 500

// BatchCreate inserts the rows in chunks. Ids are assigned in list order.
func (s *MedicalQAStore) BatchCreate(ctx context.Context, list []types.MedicalQA) error {
	now := time.Now().UnixMilli()
	for _, chunk := range lo.Chunk(list, batchInsertSize) {
		query := s.builder().Insert(s.GetTable()).Columns(s.GetAllColumns()...)
		for _, data := range chunk {
			if data.ID == 0 {
				data.ID = utils.GenSpecID()
			}
			if data.CreatedAt == 0 {
				data.CreatedAt = now
			}
			query = query.Values(data.ID, data.DocumentID, data.Focus, data.Source, data.QuestionID, data.QuestionType, data.Question, data.Answer, data.CreatedAt)
		}

		queryString, args, err := query.ToSql()
		if err != nil {
			return ErrorSqlBuild(err)
		}

		if _, err = s.GetMaster(ctx).ExecContext(ctx, queryString, args...); err != nil {
			return err
		}
	}
	return nil
}

// Search matches opts.Query as a case-sensitive substring of question, answer or focus.
func (s *MedicalQAStore) Search(ctx context.Context, opts types.SearchQAOptions) ([]types.MedicalQA, error) {
	fn := s.provider.SubstrFunc()
	query := s.builder().Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Or{
		sq.Expr(fn+"(question, ?) > 0", opts.Query),
		sq.Expr(fn+"(answer, ?) > 0", opts.Query),
		sq.Expr(fn+"(focus, ?) > 0", opts.Query),
	}).OrderBy("id ASC")

	if opts.QuestionType != "" {
		query = query.Where(sq.Eq{"question_type": opts.QuestionType})
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.MedicalQA
	if err = s.GetReplica(ctx).SelectContext(ctx, &res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *MedicalQAStore) Total(ctx context.Context) (int64, error) {
	queryString, args, err := s.builder().Select("COUNT(*)").From(s.GetTable()).ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var res int64
	if err = s.GetReplica(ctx).GetContext(ctx, &res, queryString, args...); err != nil {
		return 0, err
	}
	return res, nil
}
