package export

import (
	"database/sql"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// DatabaseName is the SQLite database file written next to the SQLite script.
const DatabaseName = "sample-database.db"

// SQLiteDBWriter builds a ready-to-query SQLite database file.
type SQLiteDBWriter struct {
	dir string
	qb  squirrel.StatementBuilderType
}

func NewSQLiteDBWriter(dir string) *SQLiteDBWriter {
	return &SQLiteDBWriter{
		dir: dir,
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (w *SQLiteDBWriter) Name() string { return "SQLite database" }

func (w *SQLiteDBWriter) Path() string { return filepath.Join(w.dir, DatabaseName) }

func (w *SQLiteDBWriter) Write(ds *dataset.Dataset) error {
	if ds == nil {
		return apperrors.New(apperrors.CodeInvalidArgument, "the dataset argument is required to write %s", w.Name())
	}
	if err := createDir(w.dir); err != nil {
		return err
	}

	path := w.Path()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(apperrors.CodeWriteFailure, "failed to replace "+path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeWriteFailure, "failed to create SQLite database", err)
	}
	defer db.Close()

	if err := w.populate(db, ds); err != nil {
		return apperrors.Wrap(apperrors.CodeWriteFailure, "failed to populate SQLite database", err)
	}
	return nil
}

func (w *SQLiteDBWriter) populate(db *sql.DB, ds *dataset.Dataset) error {
	dialect := dialects[config.DialectSQLite]
	script := NewSQLWriter(dialect, w.dir)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, d := range ds.Schemas() {
		if _, err := tx.Exec(script.GenerateCreateTableSQL(d)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", d.Name(), err)
		}

		columns := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			columns[i] = dialect.Quote(f.Name)
		}
		placeholders := make([]any, len(columns))
		query, _, err := w.qb.Insert(dialect.Quote(d.Name())).Columns(columns...).
			Values(placeholders...).ToSql()
		if err != nil {
			return err
		}
		stmt, err := tx.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare insert for %s: %w", d.Name(), err)
		}

		for _, row := range ds.Rows(d.Type) {
			if _, err := stmt.Exec(bindValues(d, row.Values())...); err != nil {
				stmt.Close()
				return fmt.Errorf("failed to insert into %s: %w", d.Name(), err)
			}
		}
		stmt.Close()
	}
	return tx.Commit()
}

// bindValues converts record values to the storage classes the SQLite
// script uses, so the file and the script agree.
func bindValues(d schema.Descriptor, values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
		switch x := v.(type) {
		case bool:
			if x {
				out[i] = 1
			} else {
				out[i] = 0
			}
		case time.Time:
			out[i] = x.UTC().Format(SQLDateTimeLayout)
		case string:
			if d.Fields[i].Type != schema.Binary {
				continue
			}
			if raw, err := base64.StdEncoding.DecodeString(x); err == nil {
				out[i] = raw
			}
		}
	}
	return out
}
