package export

import (
	"strings"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
)

// Dialect holds the type mapping and literal rules of one SQL variant.
type Dialect struct {
	Name  string
	Types map[schema.DataType]string

	// Quote wraps an identifier.
	Quote func(name string) string
	// HexBlob wraps an upper-case hex string as a binary literal.
	HexBlob func(hex string) string
	// EscapeBackslash doubles backslashes inside string literals.
	EscapeBackslash bool
}

func doubleQuote(name string) string { return `"` + strings.ReplaceAll(name, `"`, `""`) + `"` }
func backQuote(name string) string   { return "`" + strings.ReplaceAll(name, "`", "``") + "`" }
func bracketQuote(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

var dialects = map[string]Dialect{
	config.DialectSQLite: {
		Name: config.DialectSQLite,
		Types: map[schema.DataType]string{
			schema.Integer:  "INTEGER",
			schema.Text:     "TEXT",
			schema.Float:    "REAL",
			schema.Boolean:  "INTEGER",
			schema.Date:     "TEXT",
			schema.DateTime: "TEXT",
			schema.Time:     "TEXT",
			schema.Binary:   "BLOB",
		},
		Quote:   doubleQuote,
		HexBlob: func(hex string) string { return "X'" + hex + "'" },
	},
	config.DialectMySQL: {
		Name: config.DialectMySQL,
		Types: map[schema.DataType]string{
			schema.Integer:  "INT",
			schema.Text:     "VARCHAR(512)",
			schema.Float:    "DOUBLE",
			schema.Boolean:  "BIT",
			schema.Date:     "DATE",
			schema.DateTime: "DATETIME(3)",
			schema.Time:     "TIME(3)",
			schema.Binary:   "MEDIUMBLOB",
		},
		Quote:           backQuote,
		HexBlob:         func(hex string) string { return "0x" + hex },
		EscapeBackslash: true,
	},
	config.DialectMSSQL: {
		Name: config.DialectMSSQL,
		Types: map[schema.DataType]string{
			schema.Integer:  "INT",
			schema.Text:     "VARCHAR(512)",
			schema.Float:    "FLOAT",
			schema.Boolean:  "BIT",
			schema.Date:     "DATE",
			schema.DateTime: "DATETIME2",
			schema.Time:     "TIME",
			schema.Binary:   "VARBINARY(MAX)",
		},
		Quote:   bracketQuote,
		HexBlob: func(hex string) string { return "0x" + hex },
	},
	config.DialectPostgres: {
		Name: config.DialectPostgres,
		Types: map[schema.DataType]string{
			schema.Integer:  "INT",
			schema.Text:     "VARCHAR(512)",
			schema.Float:    "DOUBLE PRECISION",
			schema.Boolean:  "SMALLINT",
			schema.Date:     "DATE",
			schema.DateTime: "TIMESTAMP",
			schema.Time:     "TIME",
			schema.Binary:   "BYTEA",
		},
		Quote:   doubleQuote,
		HexBlob: func(hex string) string { return `'\x` + hex + `'::bytea` },
	},
}

// LookupDialect accepts any spelling config.CanonicalDialect does.
func LookupDialect(name string) (Dialect, error) {
	canonical, ok := config.CanonicalDialect(name)
	if !ok {
		return Dialect{}, apperrors.New(apperrors.CodeInvalidConfiguration, "unsupported SQL dialect: %s", name)
	}
	return dialects[canonical], nil
}

// MapColumnType returns the native column type for t.
func (d Dialect) MapColumnType(t schema.DataType) string {
	if native, ok := d.Types[t]; ok {
		return native
	}
	return d.Types[schema.Text]
}

// FormatColumnType returns the column definition tail for f within d.
// A lone key becomes the primary key.
func (d Dialect) FormatColumnType(f schema.Field, soleKey bool) string {
	parts := []string{d.MapColumnType(f.Type)}
	if f.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if f.Key && soleKey {
		parts = append(parts, "PRIMARY KEY")
	}
	return strings.Join(parts, " ")
}

func (d Dialect) quoteString(s string) string {
	if d.EscapeBackslash {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
