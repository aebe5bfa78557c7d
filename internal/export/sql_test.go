package export

import (
	"os"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPrefix(script, prefix string) int {
	n := 0
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestStatementCountsPerDialect(t *testing.T) {
	ds, cfg := generated(t)

	for _, name := range config.Dialects {
		t.Run(name, func(t *testing.T) {
			d, err := LookupDialect(name)
			require.NoError(t, err)
			w := NewSQLWriter(d, t.TempDir())
			require.NoError(t, w.Write(ds))

			data, err := os.ReadFile(w.Path())
			require.NoError(t, err)
			script := string(data)

			assert.Equal(t, len(schema.Entities()), countPrefix(script, "CREATE TABLE "))
			for _, e := range schema.Entities() {
				got := countPrefix(script, "INSERT INTO "+d.Quote(e.Name())+" ")
				assert.Equal(t, cfg.Count(e.Type), got, e.Name())
			}

			// Every CREATE precedes every INSERT.
			assert.Less(t, strings.LastIndex(script, "CREATE TABLE "), strings.Index(script, "INSERT INTO "))
		})
	}
}

func TestCreateTable(t *testing.T) {
	product, _ := schema.Lookup(schema.Product)
	line, _ := schema.Lookup(schema.OrderLine)

	cases := []struct {
		dialect string
		want    []string
	}{
		{config.DialectSQLite, []string{`CREATE TABLE "Product" (`, `"ID" INTEGER NOT NULL PRIMARY KEY,`, `"DateUpdated" TEXT,`, `"Cost" REAL NOT NULL`}},
		{config.DialectMySQL, []string{"CREATE TABLE `Product` (", "`ID` INT NOT NULL PRIMARY KEY,", "`DateCreated` DATETIME(3) NOT NULL,", "`Name` VARCHAR(512) NOT NULL"}},
		{config.DialectMSSQL, []string{"CREATE TABLE [Product] (", "[ID] INT NOT NULL PRIMARY KEY,", "[DateCreated] DATETIME2 NOT NULL,"}},
		{config.DialectPostgres, []string{`CREATE TABLE "Product" (`, `"Price" DOUBLE PRECISION NOT NULL,`, `"DateDeleted" TIMESTAMP`}},
	}
	for _, tc := range cases {
		t.Run(tc.dialect, func(t *testing.T) {
			d, err := LookupDialect(tc.dialect)
			require.NoError(t, err)
			w := NewSQLWriter(d, "")

			stmt := w.GenerateCreateTableSQL(product)
			for _, want := range tc.want {
				assert.Contains(t, stmt, want)
			}
			assert.True(t, strings.HasSuffix(stmt, "\n);"))
			assert.NotContains(t, w.GenerateCreateTableSQL(line), "PRIMARY KEY")
		})
	}
}

func TestColumnTypeMapping(t *testing.T) {
	cases := map[string]map[schema.DataType]string{
		config.DialectSQLite:   {schema.Binary: "BLOB", schema.Boolean: "INTEGER", schema.Date: "TEXT", schema.Time: "TEXT"},
		config.DialectMySQL:    {schema.Binary: "MEDIUMBLOB", schema.Boolean: "BIT", schema.Time: "TIME(3)"},
		config.DialectMSSQL:    {schema.Binary: "VARBINARY(MAX)", schema.Boolean: "BIT", schema.Float: "FLOAT"},
		config.DialectPostgres: {schema.Binary: "BYTEA", schema.Boolean: "SMALLINT", schema.Date: "DATE"},
	}
	for name, types := range cases {
		d, err := LookupDialect(name)
		require.NoError(t, err)
		for logical, native := range types {
			assert.Equal(t, native, d.MapColumnType(logical), "%s %s", name, logical)
		}
	}
}

func TestInsertLiterals(t *testing.T) {
	ds := fixture()

	cases := []struct {
		dialect string
		entity  schema.EntityType
		want    []string
	}{
		{config.DialectSQLite, schema.Customer, []string{"X'0102FF'", "1234567890123", "'2023-05-06 07:08:09.123'", "NULL"}},
		{config.DialectMySQL, schema.Customer, []string{"0x0102FF"}},
		{config.DialectMSSQL, schema.Customer, []string{"0x0102FF"}},
		{config.DialectPostgres, schema.Customer, []string{`'\x0102FF'::bytea`}},
		{config.DialectSQLite, schema.Order, []string{"'COMPLETE',NULL,NULL,1,NULL,'2023-06-01','10:11:12.013'"}},
		{config.DialectSQLite, schema.Product, []string{`'O''Brien\Widget'`, "2.5", "4.99"}},
		{config.DialectMySQL, schema.Product, []string{`'O''Brien\\Widget'`}},
		{config.DialectPostgres, schema.OrderLine, []string{`VALUES (1,1,2,2.5,4.99,5,9.98)`}},
	}
	for _, tc := range cases {
		t.Run(tc.dialect+"/"+string(tc.entity), func(t *testing.T) {
			d, err := LookupDialect(tc.dialect)
			require.NoError(t, err)
			desc, _ := schema.Lookup(tc.entity)
			rows := ds.Rows(tc.entity)
			require.Len(t, rows, 1)

			stmt, err := NewSQLWriter(d, "").GenerateInsertSQL(desc, rows[0].Values())
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(stmt, "INSERT INTO "+d.Quote(desc.Name())+" ("), stmt)
			for _, want := range tc.want {
				assert.Contains(t, stmt, want)
			}
		})
	}
}

func TestInsertRejectsBadRecords(t *testing.T) {
	d, _ := LookupDialect(config.DialectSQLite)
	w := NewSQLWriter(d, "")
	role, _ := schema.Lookup(schema.Role)
	customer, _ := schema.Lookup(schema.Customer)

	_, err := w.GenerateInsertSQL(role, []any{1})
	assert.Error(t, err)

	values := fixture().Rows(schema.Customer)[0].Values()
	values[8] = "not base64!"
	_, err = w.GenerateInsertSQL(customer, values)
	assert.Error(t, err)
}

func TestQuoteEscapes(t *testing.T) {
	assert.Equal(t, `"a""b"`, doubleQuote(`a"b`))
	assert.Equal(t, "`a``b`", backQuote("a`b"))
	assert.Equal(t, "[a]]b]", bracketQuote("a]b"))
}
