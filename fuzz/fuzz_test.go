// Package fuzz fuzzes the grouping + reindent pipeline for panics.
// Grounded on freeeve-machparse/fuzz/fuzz_test.go's seed corpus, re-pointed
// at sqlgroup.Format since the old typed-AST Parse no longer exists.
package fuzz

import (
	"testing"

	"github.com/freeeve/sqlgroup"
)

// FuzzFormat checks that Format never panics on arbitrary input; a syntax
// or structural error must come back as an error value, never a panic.
func FuzzFormat(f *testing.F) {
	seeds := []string{
		"SELECT * FROM users",
		"SELECT id, name FROM users WHERE status = 'active'",
		"SELECT a.id, b.name FROM a JOIN b ON a.id = b.a_id",
		"SELECT DISTINCT a, b FROM t",
		"SELECT ALL * FROM t",
		"INSERT INTO users (id, name) VALUES (1, 'test')",
		"INSERT INTO t (a, b) VALUES (1, 2), (3, 4), (5, 6)",
		"UPDATE users SET name = 'new' WHERE id = 1",
		"DELETE FROM users WHERE id = 1",
		"SELECT * FROM users WHERE id IN (SELECT user_id FROM orders)",
		"SELECT * FROM (SELECT 1 FROM t) AS sub",
		"SELECT (SELECT MAX(id) FROM t2) FROM t",
		"WITH cte AS (SELECT 1) SELECT * FROM cte",
		"WITH RECURSIVE cte AS (SELECT 1 UNION ALL SELECT n+1 FROM cte WHERE n < 10) SELECT * FROM cte",
		"",
		"(",
		")",
		"SELECT",
		"SELECT FROM",
		"SELECT * FROM t WHERE",
		"SELECT (((",
		"SELECT a, FROM t",
		"INSERT INTO",
		"WITH",
		"SELECT CASE WHEN",
		";;;",
		"SELECT 1 -- unterminated",
		"SELECT 1 /* unterminated",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, sql string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Format panicked on %q: %v", sql, r)
			}
		}()
		_, _ = sqlgroup.Format(sql, sqlgroup.DefaultOptions())
	})
}
