package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSQLStatements(t *testing.T) {
	cases := []struct {
		name    string
		sql     string
		escapes bool
		want    []string
	}{
		{
			name: "simple",
			sql:  "CREATE TABLE a (x INT);\nINSERT INTO a VALUES (1);",
			want: []string{"CREATE TABLE a (x INT)", "INSERT INTO a VALUES (1)"},
		},
		{
			name: "semicolon inside string",
			sql:  "INSERT INTO a VALUES ('x;y');INSERT INTO a VALUES ('O''Brien;')",
			want: []string{"INSERT INTO a VALUES ('x;y')", "INSERT INTO a VALUES ('O''Brien;')"},
		},
		{
			name: "quoted identifiers",
			sql:  "INSERT INTO \"we;ird\" VALUES (1); INSERT INTO `b;c` VALUES (2); INSERT INTO [d;e] VALUES (3);",
			want: []string{`INSERT INTO "we;ird" VALUES (1)`, "INSERT INTO `b;c` VALUES (2)", "INSERT INTO [d;e] VALUES (3)"},
		},
		{
			name:    "backslash escapes",
			sql:     `INSERT INTO a VALUES ('it\'s;fine'); INSERT INTO a VALUES ('C:\\');`,
			escapes: true,
			want:    []string{`INSERT INTO a VALUES ('it\'s;fine')`, `INSERT INTO a VALUES ('C:\\')`},
		},
		{
			name: "backslash is literal by default",
			sql:  `INSERT INTO a VALUES ('C:\');INSERT INTO a VALUES ('\x0A'::bytea);`,
			want: []string{`INSERT INTO a VALUES ('C:\')`, `INSERT INTO a VALUES ('\x0A'::bytea)`},
		},
		{
			name: "comments and blanks",
			sql:  "-- header; not a statement\n  -- indented\nSELECT 1;\n\n;\n/* block */;",
			want: []string{"SELECT 1"},
		},
		{
			name: "no trailing semicolon",
			sql:  "SELECT 1;\nSELECT 2",
			want: []string{"SELECT 1", "SELECT 2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.escapes {
				assert.Equal(t, tc.want, ParseSQLStatements(tc.sql))
			}
			assert.Equal(t, tc.want, SplitStatements(tc.sql, tc.escapes))
		})
	}
}
