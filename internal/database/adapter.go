// Package database applies generated SQL scripts to live databases.
package database

import (
	"context"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/sampleset/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/sampleset/internal/database/sqlite"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// ExecuteScript runs every statement of script in one transaction and
	// returns how many statements ran.
	ExecuteScript(ctx context.Context, script string) (int, error)
	GetTableRowCount(ctx context.Context, tableName string) (int, error)
}

// NewAdapter returns the adapter for a dialect name. MSSQL scripts are
// generated but there is no driver to apply them with.
func NewAdapter(dialect string) (DatabaseAdapter, error) {
	name, ok := config.CanonicalDialect(dialect)
	if !ok {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "unsupported SQL dialect: %s", dialect)
	}

	switch name {
	case config.DialectPostgres:
		return postgres.New(), nil
	case config.DialectMySQL:
		return mysql.New(), nil
	case config.DialectSQLite:
		return sqlite.New(), nil
	}
	return nil, apperrors.New(apperrors.CodeInvalidArgument, "loading %s scripts is not supported", name)
}

// Result summarizes a loaded script.
type Result struct {
	Statements int
	Rows       map[string]int
}

// Load connects to url, applies script and counts the rows of tables.
func Load(ctx context.Context, adapter DatabaseAdapter, url, script string, tables ...string) (Result, error) {
	res := Result{Rows: make(map[string]int, len(tables))}

	if err := adapter.Connect(ctx, url); err != nil {
		return res, apperrors.Wrap(apperrors.CodeResourceUnavailable, "failed to connect to database", err)
	}
	defer adapter.Close()

	if err := adapter.Ping(ctx); err != nil {
		return res, apperrors.Wrap(apperrors.CodeResourceUnavailable, "failed to reach database", err)
	}

	n, err := adapter.ExecuteScript(ctx, script)
	res.Statements = n
	if err != nil {
		return res, apperrors.Wrap(apperrors.CodeWriteFailure, "failed to apply script", err)
	}

	for _, table := range tables {
		count, err := adapter.GetTableRowCount(ctx, table)
		if err != nil {
			return res, apperrors.Wrap(apperrors.CodeResourceUnavailable, "failed to count rows of "+table, err)
		}
		res.Rows[table] = count
	}
	return res, nil
}
