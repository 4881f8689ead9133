package sqlgroup

import (
	"testing"

	vitess "github.com/blastrain/vitess-sqlparser/sqlparser"
)

// TestCorpusIsValidSQL cross-checks the corpus against an independent SQL
// parser (SPEC_FULL.md §2.5): since this package's grouping tree has no
// typed grammar of its own to compare ASTs against, vitess-sqlparser instead
// serves as an oracle: for every corpus entry it accepts, our Format output
// must still be accepted after a reindent round-trip. Entries it rejects
// are skipped.
// Grounded on freeeve-machparse/compare_test.go's use of the same package.
func TestCorpusIsValidSQL(t *testing.T) {
	opts := DefaultOptions()
	for _, tc := range corpus {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := vitess.Parse(tc.input); err != nil {
				t.Skipf("vitess-sqlparser rejects input, skipping oracle check: %v", err)
			}

			out, err := Format(tc.input, opts)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if _, err := vitess.Parse(out); err != nil {
				t.Errorf("vitess-sqlparser rejects our formatted output: %v\nformatted:\n%s", err, out)
			}
		})
	}
}
