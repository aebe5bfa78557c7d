package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/database/common"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	// Scripts carry inline literals, so skip the prepare round trip.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) ExecuteScript(ctx context.Context, script string) (int, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := common.ParseSQLStatements(script)
	for i, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return i, fmt.Errorf("failed to execute statement '%s': %w", common.Abbreviate(stmt), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return len(statements), fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(statements), nil
}

func (p *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	query, args, err := p.qb.Select("COUNT(*)").From(`"` + tableName + `"`).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = p.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}
