package export

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Masterminds/squirrel"
)

// ScriptName is the file every SQL writer produces in its dialect directory.
const ScriptName = "sample-database.sql"

// SQLDateTimeLayout renders DATETIME literals.
const SQLDateTimeLayout = "2006-01-02 15:04:05.000"

type SQLWriter struct {
	dialect Dialect
	dir     string
	qb      squirrel.StatementBuilderType
}

// NewSQLWriter writes one CREATE+INSERT script for d into dir.
func NewSQLWriter(d Dialect, dir string) *SQLWriter {
	return &SQLWriter{
		dialect: d,
		dir:     dir,
		qb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (w *SQLWriter) Name() string { return w.dialect.Name }

// Path is the script file the writer produces.
func (w *SQLWriter) Path() string { return filepath.Join(w.dir, ScriptName) }

func (w *SQLWriter) Write(ds *dataset.Dataset) error {
	if ds == nil {
		return apperrors.New(apperrors.CodeInvalidArgument, "the dataset argument is required to write %s", w.Name())
	}
	script, err := w.Script(ds)
	if err != nil {
		return err
	}
	if err := createDir(w.dir); err != nil {
		return err
	}
	return writeFile(w.Path(), []byte(script))
}

// Script renders every CREATE TABLE statement followed by every INSERT,
// grouped by entity type in canonical order.
func (w *SQLWriter) Script(ds *dataset.Dataset) (string, error) {
	var sb strings.Builder
	schemas := ds.Schemas()

	for _, d := range schemas {
		sb.WriteString(w.GenerateCreateTableSQL(d))
		sb.WriteString("\n\n")
	}

	for _, d := range schemas {
		for _, row := range ds.Rows(d.Type) {
			stmt, err := w.GenerateInsertSQL(d, row.Values())
			if err != nil {
				return "", apperrors.Wrap(apperrors.CodeWriteFailure, fmt.Sprintf("failed to build %s insert for %s", w.Name(), d.Name()), err)
			}
			sb.WriteString(stmt)
			sb.WriteString(";\n")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (w *SQLWriter) GenerateCreateTableSQL(d schema.Descriptor) string {
	q := w.dialect.Quote
	soleKey := len(d.Keys()) == 1

	lines := []string{fmt.Sprintf("CREATE TABLE %s (", q(d.Name()))}
	for i, f := range d.Fields {
		comma := ","
		if i == len(d.Fields)-1 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("    %s %s%s", q(f.Name), w.dialect.FormatColumnType(f, soleKey), comma))
	}
	lines = append(lines, ");")
	return strings.Join(lines, "\n")
}

// GenerateInsertSQL renders a single INSERT with inline literals.
func (w *SQLWriter) GenerateInsertSQL(d schema.Descriptor, values []any) (string, error) {
	if len(values) != len(d.Fields) {
		return "", fmt.Errorf("%s has %d fields but the record has %d values", d.Name(), len(d.Fields), len(values))
	}

	columns := make([]string, len(d.Fields))
	literals := make([]any, len(d.Fields))
	for i, f := range d.Fields {
		columns[i] = w.dialect.Quote(f.Name)
		lit, err := w.literal(f, values[i])
		if err != nil {
			return "", err
		}
		literals[i] = squirrel.Expr(lit)
	}

	query, _, err := w.qb.Insert(w.dialect.Quote(d.Name())).Columns(columns...).Values(literals...).ToSql()
	return query, err
}

func (w *SQLWriter) literal(f schema.Field, val any) (string, error) {
	if val == nil {
		return "NULL", nil
	}

	switch f.Type {
	case schema.Boolean:
		if b, ok := val.(bool); ok {
			if b {
				return "1", nil
			}
			return "0", nil
		}
	case schema.Binary:
		s, ok := val.(string)
		if !ok {
			break
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return "", fmt.Errorf("field %s is not base64: %w", f.Name, err)
		}
		return w.dialect.HexBlob(strings.ToUpper(hex.EncodeToString(raw))), nil
	}

	switch v := val.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return w.dialect.quoteString(v.UTC().Format(SQLDateTimeLayout)), nil
	case string:
		return w.dialect.quoteString(v), nil
	}
	return "", fmt.Errorf("field %s has unsupported value type %T", f.Name, val)
}
