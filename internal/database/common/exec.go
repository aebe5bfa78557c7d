package common

import (
	"context"
	"database/sql"
	"fmt"
)

// ExecuteInTx runs statements in order inside one transaction. On failure it
// returns the index of the failing statement.
func ExecuteInTx(ctx context.Context, db *sql.DB, statements []string) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return i, fmt.Errorf("failed to execute statement '%s': %w", Abbreviate(stmt), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return len(statements), fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(statements), nil
}

// Abbreviate shortens a statement for error messages.
func Abbreviate(stmt string) string {
	const limit = 120
	if len(stmt) <= limit {
		return stmt
	}
	return stmt[:limit] + "..."
}
