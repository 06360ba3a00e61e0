package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/breeew/aicare-api/internal/store"
	"github.com/breeew/aicare-api/pkg/register"
)

const (
	DRIVER_SQLITE   = "sqlite"
	DRIVER_POSTGRES = "postgres"
)

//go:embed schema.sql
var schemaSQL string

type ConnectConfig struct {
	Driver string
	DSN    string
}

type RegisterKey struct{}

type Provider struct {
	driver string
	master *sqlx.DB
	stores *Stores
}

type Stores struct {
	store.MedicalQAStore
	store.PatientRecordStore
}

func MustSetup(cfg ConnectConfig) *Provider {
	p, err := Setup(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

func Setup(cfg ConnectConfig) (*Provider, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DRIVER_SQLITE
	}
	if driver != DRIVER_SQLITE && driver != DRIVER_POSTGRES {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	if driver == DRIVER_SQLITE {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	p := &Provider{
		driver: driver,
		master: db,
		stores: &Stores{},
	}
	if err = p.Install(); err != nil {
		db.Close()
		return nil, err
	}

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(p)
	}
	return p, nil
}

// Install creates the tables and indexes when missing.
func (p *Provider) Install() error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := p.master.Exec(stmt); err != nil {
			return fmt.Errorf("failed to install schema: %w", err)
		}
	}
	return nil
}

func (p *Provider) Driver() string {
	return p.driver
}

func (p *Provider) Close() error {
	return p.master.Close()
}

func (p *Provider) Ping(ctx context.Context) error {
	return p.master.PingContext(ctx)
}

func (p *Provider) Builder() sq.StatementBuilderType {
	if p.driver == DRIVER_POSTGRES {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// SubstrFunc names the function returning the 1-based position of a substring, 0 when absent.
func (p *Provider) SubstrFunc() string {
	if p.driver == DRIVER_POSTGRES {
		return "strpos"
	}
	return "instr"
}

type txKey struct{}

// GetMaster returns the transaction carried by ctx, if any.
func (p *Provider) GetMaster(ctx context.Context) SqlCommon {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.master
}

func (p *Provider) GetReplica(ctx context.Context) SqlCommon {
	return p.GetMaster(ctx)
}

// Transaction runs f with a transaction bound to its context. Nested calls join the outer one.
func (p *Provider) Transaction(ctx context.Context, f func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return f(ctx)
	}

	tx, err := p.master.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	if err = f(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w, rollback: %s", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (p *Provider) MedicalQAStore() store.MedicalQAStore {
	return p.stores.MedicalQAStore
}

func (p *Provider) PatientRecordStore() store.PatientRecordStore {
	return p.stores.PatientRecordStore
}
