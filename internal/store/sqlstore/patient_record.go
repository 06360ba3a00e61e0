package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/breeew/aicare-api/pkg/register"
	"github.com/breeew/aicare-api/pkg/types"
	"github.com/breeew/aicare-api/pkg/utils"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.PatientRecordStore = NewPatientRecordStore(provider)
	})
}

type PatientRecordStore struct {
	CommonFields
}

func NewPatientRecordStore(provider SqlProviderAchieve) *PatientRecordStore {
	repo := &PatientRecordStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_PATIENT_RECORD)
	repo.SetAllColumns("id", "timestamp", "raw_text", "lang", "created_at")
	return repo
}

func (s *PatientRecordStore) Create(ctx context.Context, data types.PatientRecord) error {
	if data.ID == 0 {
		data.ID = utils.GenSpecID()
	}
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().UnixMilli()
	}
	query := s.builder().Insert(s.GetTable()).
		Columns(s.GetAllColumns()...).
		Values(data.ID, data.Timestamp, data.RawText, data.Lang, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).ExecContext(ctx, queryString, args...)
	return err
}

// ListRecent returns the newest records first.
func (s *PatientRecordStore) ListRecent(ctx context.Context, limit uint64) ([]types.PatientRecord, error) {
	query := s.builder().Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.PatientRecord
	if err = s.GetReplica(ctx).SelectContext(ctx, &res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *PatientRecordStore) Total(ctx context.Context) (int64, error) {
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

// DeleteBefore removes records created before createdAt (unix millis) and reports how many went.
func (s *PatientRecordStore) DeleteBefore(ctx context.Context, createdAt int64) (int64, error) {
	queryString, args, err := s.builder().Delete(s.GetTable()).Where(sq.Lt{"created_at": createdAt}).ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).ExecContext(ctx, queryString, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *PatientRecordStore) Reset(ctx context.Context) error {
	queryString, args, err := s.builder().Delete(s.GetTable()).ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).ExecContext(ctx, queryString, args...)
	return err
}
