package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/breeew/aicare-api/pkg/types"
)

// SqlCommon is satisfied by both *sqlx.DB and *sqlx.Tx.
type SqlCommon interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type SqlProviderAchieve interface {
	GetMaster(ctx context.Context) SqlCommon
	GetReplica(ctx context.Context) SqlCommon
	Builder() sq.StatementBuilderType
	SubstrFunc() string
}

type CommonFields struct {
	provider   SqlProviderAchieve
	table      types.TableName
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(t types.TableName) {
	c.table = t
}

func (c *CommonFields) GetTable() string {
	return c.table.Name()
}

func (c *CommonFields) SetAllColumns(cols ...string) {
	c.allColumns = cols
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) GetMaster(ctx context.Context) SqlCommon {
	return c.provider.GetMaster(ctx)
}

func (c *CommonFields) GetReplica(ctx context.Context) SqlCommon {
	return c.provider.GetReplica(ctx)
}

func (c *CommonFields) builder() sq.StatementBuilderType {
	return c.provider.Builder()
}

func ErrorSqlBuild(err error) error {
	return fmt.Errorf("failed to build sql: %w", err)
}
