package reindent

import (
	"github.com/freeeve/sqlgroup/config"
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/tree"
)

// AlignedFilter is AlignedIndentFilter (spec.md §6): the same walker,
// configured from AlignedConfig and running in aligned mode (keywords
// right-aligned to the parent clause's longest opener instead of indented
// to the literal opener's own length).
type AlignedFilter struct {
	inner *Filter
}

// NewAlignedFilter builds an AlignedFilter from cfg, defaulting a nil sink
// to diag.Noop. comma_first/indent_after_first/indent_columns have no
// aligned-mode analogue and are left at their zero values, matching the
// original's AlignedIndentFilter constructor surface.
func NewAlignedFilter(cfg config.AlignedConfig, sink diag.Sink) *AlignedFilter {
	rc := config.ReindentConfig{Width: cfg.Width, Char: cfg.Char}
	f := NewFilter(rc, sink)
	f.aligned = true
	return &AlignedFilter{inner: f}
}

// Process walks stmt in aligned mode and returns it.
func (a *AlignedFilter) Process(stmt *tree.TokenList) *tree.TokenList {
	return a.inner.Process(stmt)
}
