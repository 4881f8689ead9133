// Package sqlgroup provides the grouping and reindentation core of a SQL
// pretty-printer.
//
// Given a flat token stream from lexer.Tokenize, Group assembles it into a
// hierarchical parse tree of SQL constructs (parentheses, identifiers,
// comparisons, clauses, statements), and the reindent/filters packages walk
// that tree to produce a canonically formatted string.
//
// Basic usage:
//
//	out, err := sqlgroup.Format("select a,b from t", sqlgroup.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
package sqlgroup

import (
	"github.com/freeeve/sqlgroup/config"
	"github.com/freeeve/sqlgroup/filters"
	"github.com/freeeve/sqlgroup/group"
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/lexer"
	"github.com/freeeve/sqlgroup/reindent"
	"github.com/freeeve/sqlgroup/tree"
)

// Group runs the fixed 32-pass grouping pipeline (spec.md §4.3) over stmt
// in place, turning its flat children into the parse tree the reindent
// filters expect.
func Group(stmt *tree.TokenList, sink diag.Sink) error {
	return group.Pipeline(stmt, sink)
}

// ReindentFilter is the public alias of reindent.Filter (spec.md §6
// `ReindentFilter(...).process(statement)`).
type ReindentFilter = reindent.Filter

// NewReindentFilter constructs a ReindentFilter from cfg.
func NewReindentFilter(cfg config.ReindentConfig, sink diag.Sink) *ReindentFilter {
	return reindent.NewFilter(cfg, sink)
}

// AlignedIndentFilter is the public alias of reindent.AlignedFilter
// (spec.md §6 `AlignedIndentFilter(...).process(statement)`).
type AlignedIndentFilter = reindent.AlignedFilter

// NewAlignedIndentFilter constructs an AlignedIndentFilter from cfg.
func NewAlignedIndentFilter(cfg config.AlignedConfig, sink diag.Sink) *AlignedIndentFilter {
	return reindent.NewAlignedFilter(cfg, sink)
}

// StripCommentsFilter, StripWhitespaceFilter, SpacesAroundOperatorsFilter,
// SerializerUnicode are the public aliases of the C5 ancillary filters
// (spec.md §6).
type (
	StripCommentsFilter         = filters.StripCommentsFilter
	StripWhitespaceFilter       = filters.StripWhitespaceFilter
	SpacesAroundOperatorsFilter = filters.SpacesAroundOperatorsFilter
	SerializerUnicode           = filters.SerializerUnicode
)

// Options bundles the knobs Format needs to run the whole pipeline in one
// call: lexing, grouping, stripping, reindenting, and serializing.
type Options struct {
	Reindent config.ReindentConfig
	Sink     diag.Sink
}

// DefaultOptions returns the implied defaults of spec.md §6's configuration
// table.
func DefaultOptions() Options {
	return Options{Reindent: config.DefaultReindentConfig(), Sink: diag.Noop}
}

// Format runs the full pipeline described by spec.md §2 "Data flow" on a
// single SQL statement: lex, group, strip-comments, strip-whitespace,
// reindent, spaces-around-operators, serialize.
func Format(sql string, opts Options) (string, error) {
	if opts.Sink == nil {
		opts.Sink = diag.Noop
	}
	toks := lexer.Tokenize(sql)
	stmt := tree.NewRoot(toks)
	if err := group.Pipeline(stmt, opts.Sink); err != nil {
		return "", err
	}
	filters.StripCommentsFilter{}.Process(stmt)
	filters.StripWhitespaceFilter{}.Process(stmt)
	reindent.NewFilter(opts.Reindent, opts.Sink).Process(stmt)
	filters.SpacesAroundOperatorsFilter{}.Process(stmt)
	return filters.SerializerUnicode{}.Process(stmt), nil
}
