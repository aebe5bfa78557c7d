package common

import "strings"

// ParseSQLStatements splits a script on semicolons outside quoted strings
// and identifiers. Line comments starting a line are dropped.
func ParseSQLStatements(sql string) []string {
	return SplitStatements(sql, false)
}

// SplitStatements is ParseSQLStatements for dialects where a backslash
// escapes the next character inside string literals.
func SplitStatements(sql string, backslashEscapes bool) []string {
	statements := make([]string, 0, strings.Count(sql, ";")+1)

	var current strings.Builder
	var quote byte
	atLineStart := true

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" && !strings.HasPrefix(stmt, "/*") {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i := 0; i < len(sql); i++ {
		c := sql[i]

		if quote != 0 {
			current.WriteByte(c)
			switch {
			case backslashEscapes && c == '\\' && quote == '\'' && i+1 < len(sql):
				// Keep an escaped character with its backslash.
				i++
				current.WriteByte(sql[i])
			case c == quote && i+1 < len(sql) && sql[i+1] == quote:
				i++
				current.WriteByte(sql[i])
			case c == quote:
				quote = 0
			}
			continue
		}

		if atLineStart && strings.HasPrefix(strings.TrimLeft(sql[i:min(len(sql), i+256)], " \t"), "--") {
			end := strings.IndexByte(sql[i:], '\n')
			if end < 0 {
				break
			}
			i += end
			continue
		}
		atLineStart = c == '\n'

		switch c {
		case ';':
			flush()
		case '\'', '"', '`':
			quote = c
			current.WriteByte(c)
		case '[':
			quote = ']'
			current.WriteByte(c)
		default:
			current.WriteByte(c)
		}
	}

	flush()
	return statements
}
