package store

import (
	"context"

	"github.com/breeew/aicare-api/pkg/types"
)

type MedicalQAStore interface {
	BatchCreate(ctx context.Context, list []types.MedicalQA) error
	Search(ctx context.Context, opts types.SearchQAOptions) ([]types.MedicalQA, error)
	Total(ctx context.Context) (int64, error)
}

type PatientRecordStore interface {
	Create(ctx context.Context, data types.PatientRecord) error
	ListRecent(ctx context.Context, limit uint64) ([]types.PatientRecord, error)
	Total(ctx context.Context) (int64, error)
	DeleteBefore(ctx context.Context, createdAt int64) (int64, error)
	Reset(ctx context.Context) error
}

type JournalStore interface {
	Append(entry types.JournalEntry) error
	Load() []types.JournalEntry
	Reset() error
}

type RecordLog interface {
	Append(record types.PatientRecord) error
	Load() ([]types.PatientRecord, error)
	Reset() error
}
