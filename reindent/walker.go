// Package reindent implements the reindent walker (C4): a recursive
// visitor dispatched on group kind that inserts whitespace/newline tokens
// to realize canonical SQL layout (spec.md §4.4–§4.5). Grounded on
// sqlparse/filters/reindent.py's `ReindentFilter`.
package reindent

import (
	"fmt"
	"strings"

	"github.com/freeeve/sqlgroup/config"
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// Filter is the ReindentFilter of spec.md §6: width/char/wrap_after/
// comma_first/indent_after_first/indent_columns, applied by walking the
// tree once and inserting whitespace tokens in place.
type Filter struct {
	cfg  config.ReindentConfig
	sink diag.Sink

	offset int
	indent int
	col    int

	// lastFunc is the name token of the most recently entered Function
	// group, used by the nested-identifier-list wrap policy to align a
	// wrapped argument list under the function's opening paren rather than
	// its own indent column (spec.md §4.5; SPEC_FULL.md §4 item 6).
	lastFunc *tree.Token

	// aligned switches processOpeningClause to AlignedIndentFilter's
	// right-alignment policy (spec.md §4.5 "Aligned-indent variant"),
	// overriding _get_kwd_offset instead of using column-of-opener.
	aligned bool
}

// NewFilter builds a Filter from cfg, defaulting a nil sink to diag.Noop.
func NewFilter(cfg config.ReindentConfig, sink diag.Sink) *Filter {
	if sink == nil {
		sink = diag.Noop
	}
	f := &Filter{cfg: cfg, sink: sink}
	if cfg.IndentAfterFirst {
		f.indent = 1
	}
	return f
}

// Process walks stmt in place and returns it, recovering from any internal
// panic so a malformed sub-tree degrades the output rather than aborting
// it (spec.md §7 "The reindent walker likewise catches per-group
// exceptions… and continues").
func (f *Filter) Process(stmt *tree.TokenList) *tree.TokenList {
	defer func() {
		if r := recover(); r != nil {
			f.sink.Warn(nil, fmt.Sprintf("reindent: recovered from panic: %v", r))
		}
	}()
	f.walk(stmt)
	return stmt
}

// --- scope helpers --------------------------------------------------------

func (f *Filter) withOffset(v int, fn func()) {
	saved := f.offset
	f.offset = v
	defer func() { f.offset = saved }()
	fn()
}

func (f *Filter) withOffsetDelta(delta int, fn func()) {
	f.withOffset(f.offset+delta, fn)
}

func (f *Filter) withIndent(delta int, fn func()) {
	saved := f.indent
	f.indent += delta
	defer func() { f.indent = saved }()
	fn()
}

// lineStart is the column new lines reset to: offset + indent*width.
func (f *Filter) lineStart() int {
	n := f.offset + f.indent*f.cfg.Width
	if n < 0 {
		return 0
	}
	return n
}

// nl inserts a Whitespace.Newline token before tlist.Children[idx] with
// padding = lineStart()+delta (floored at 0), and resets the running
// column tracker to that padding.
func (f *Filter) nl(tlist *tree.TokenList, idx, delta int) {
	pad := f.lineStart() + delta
	if pad < 0 {
		pad = 0
	}
	val := "\n" + strings.Repeat(string(rune(f.cfg.Char)), pad)
	tlist.InsertBefore(idx, tree.NewToken(token.WhitespaceNewline, val))
	f.col = pad
}

// advance updates the running column tracker to reflect having emitted
// n's (possibly just-mutated) value.
func (f *Filter) advance(n tree.Node) {
	val := n.Value()
	if i := strings.LastIndexByte(val, '\n'); i >= 0 {
		f.col = len(val) - i - 1
	} else {
		f.col += len(val)
	}
}

// walkChildren recurses into every child group (updating col as it goes)
// in document order — insertions made by the caller before this call are
// picked up because Children is re-read by index each iteration.
func (f *Filter) walkChildren(tlist *tree.TokenList) {
	for i := 0; i < len(tlist.Children); i++ {
		c := tlist.Children[i]
		if g, ok := c.(*tree.TokenList); ok {
			f.walk(g)
		}
		f.advance(tlist.Children[i])
	}
}

// --- dispatch --------------------------------------------------------------

func (f *Filter) walk(tlist *tree.TokenList) {
	switch {
	case tlist.Kind.IsStatement():
		f.splitSections(tlist)
		f.walkChildren(tlist)
	case tlist.Kind == tree.Parenthesis:
		f.processParenthesis(tlist)
	case tlist.Kind == tree.Case:
		f.processCase(tlist)
	case tlist.Kind == tree.ConditionsList:
		f.processConditionsList(tlist)
	case tlist.Kind == tree.IdentifierList:
		f.processIdentifierList(tlist)
	case tlist.Kind == tree.SelectProjection, tlist.Kind == tree.ClauseWith,
		tlist.Kind == tree.ClausePartitionBy, tlist.Kind == tree.ClauseOrderBy,
		tlist.Kind == tree.ClauseGroupBy:
		f.processOpeningClause(tlist)
	case tlist.Kind == tree.ClauseFrom:
		f.processClauseFrom(tlist)
	case tlist.Kind == tree.Values:
		f.processValues(tlist)
	case tlist.Kind == tree.Function:
		if len(tlist.Children) > 0 {
			if nameTok, ok := tlist.Children[0].(*tree.Token); ok {
				f.lastFunc = nameTok
			}
		}
		f.walkChildren(tlist)
	case tlist.Kind == tree.WindowFunction:
		f.walkChildren(tlist)
	default:
		f.splitKeywords(tlist)
		f.walkChildren(tlist)
	}
}

// splitSections inserts a newline before every immediate clause/statement
// section except the first (spec.md §4.4 "Section splitter";
// SPEC_FULL.md §4 item 3).
func (f *Filter) splitSections(tlist *tree.TokenList) {
	sections := tlist.GetSections()
	for i, sec := range sections {
		if i == 0 {
			continue
		}
		idx := tree.TokenIndex(tlist, sec)
		if idx < 0 {
			continue
		}
		f.nl(tlist, idx, 0)
	}
}

var joinQualifiers = map[string]bool{
	"INNER": true, "LEFT": true, "RIGHT": true, "FULL": true, "CROSS": true, "OUTER": true,
}

var literalSplitWords = map[string]bool{
	"INTO": true, "OR": true, "HAVING": true, "LIMIT": true, "UNION": true,
	"VALUES": true, "SET": true, "EXCEPT": true, "GROUP": true, "ORDER": true,
}

// splitKeywords is `_split_kwds`: inserts a newline before each keyword in
// the configured split set (spec.md §4.4). BETWEEN suppresses the very
// next AND, which is part of the range, not a boolean junction.
func (f *Filter) splitKeywords(tlist *tree.TokenList) {
	betweenPending := false
	idx := 0
	for idx < len(tlist.Children) {
		tok, ok := tlist.Children[idx].(*tree.Token)
		if !ok || !tok.IsKeyword() {
			idx++
			continue
		}
		word := token.Canonical(tok.Val)
		anchor := false
		switch word {
		case "BETWEEN":
			betweenPending = true
		case "AND":
			if betweenPending {
				betweenPending = false
			} else {
				anchor = true
			}
		case "JOIN":
			_, prev := tree.TokenPrev(tlist, idx, true, true)
			if pt, ok := prev.(*tree.Token); ok && pt.IsKeyword() && joinQualifiers[token.Canonical(pt.Val)] {
				anchor = false
			} else {
				anchor = true
			}
		default:
			if literalSplitWords[word] || joinQualifiers[word] {
				anchor = true
			}
		}
		if anchor && idx > 0 {
			f.nl(tlist, idx, 0)
			idx += 2
			continue
		}
		idx++
	}
}

// processParenthesis implements the three Parenthesis policies of spec.md
// §4.5.
func (f *Filter) processParenthesis(tlist *tree.TokenList) {
	colOpen := f.col
	parent := tlist.Parent()

	switch {
	case tlist.IsCodeBlockDelimiter:
		if len(tlist.Children) > 1 {
			f.nl(tlist, 1, 4)
		}
		f.walkChildren(tlist)
		if last := len(tlist.Children) - 1; last >= 0 {
			f.nl(tlist, last, 0)
		}
	case parent != nil && parent.Kind == tree.ClauseInsert:
		if len(tlist.Children) > 1 {
			f.nl(tlist, 1, len("SELECT "))
		}
		f.walkChildren(tlist)
		if last := len(tlist.Children) - 1; last >= 0 {
			tlist.InsertBefore(last, tree.NewToken(token.Whitespace, " "))
		}
	default:
		extra := 0
		exception := parent != nil && (parent.Kind == tree.Function || parent.Kind == tree.WindowFunction || parent.Kind == tree.Comparison)
		if !exception {
			extra = 1
		}
		f.withOffset(colOpen+1+extra, func() {
			if extra > 0 && len(tlist.Children) > 1 {
				tlist.InsertBefore(1, tree.NewToken(token.Whitespace, strings.Repeat(" ", extra)))
			}
			f.walkChildren(tlist)
		})
	}
}

// processCase implements the Case policy: indent to the column of CASE,
// break before each WHEN/ELSE/END, interior content offset by len("WHEN").
func (f *Filter) processCase(tlist *tree.TokenList) {
	colCase := f.col
	f.withOffset(colCase, func() {
		idx := 0
		for idx < len(tlist.Children) {
			tok, ok := tlist.Children[idx].(*tree.Token)
			if ok && tok.IsKeyword() {
				switch token.Canonical(tok.Val) {
				case "WHEN", "ELSE", "END":
					if idx > 0 {
						f.nl(tlist, idx, 0)
						idx++
					}
				}
			}
			idx++
		}
		f.withOffsetDelta(len("WHEN"), func() {
			f.walkChildren(tlist)
		})
	})
}

// processConditionsList implements the ConditionsList policy: split on
// AND/OR only once the junction count exceeds 2.
func (f *Filter) processConditionsList(tlist *tree.TokenList) {
	if tlist.ConditionsCount <= 2 {
		f.walkChildren(tlist)
		return
	}
	colStart := f.col
	f.withOffset(colStart, func() {
		idx := 0
		for idx < len(tlist.Children) {
			tok, ok := tlist.Children[idx].(*tree.Token)
			if ok && tok.Match(token.Keyword, "AND", "OR") && idx > 0 {
				f.nl(tlist, idx, 0)
				idx += 2
				continue
			}
			idx++
		}
		f.walkChildren(tlist)
	})
}

// identifierListMax resolves max_id_list_count from the enclosing clause
// kind (spec.md §4.5).
func identifierListMax(tlist *tree.TokenList) int {
	parent := tlist.Parent()
	if parent == nil {
		return 0
	}
	switch parent.Kind {
	case tree.ClausePartitionBy, tree.ClauseOrderBy, tree.ClauseGroupBy:
		return 2
	default:
		return 0
	}
}

// processIdentifierList implements the IdentifierList policy: unconditionally
// wrap once id_list_count exceeds the clause's threshold, except nested
// inside a Function or Values — there wrapping is gated on wrap_after being
// configured at all (spec.md §4.5; SPEC_FULL.md §4 item 6).
func (f *Filter) processIdentifierList(tlist *tree.TokenList) {
	insideFnOrValues := tlist.Within(tree.Function) || tlist.Within(tree.Values)
	switch {
	case tlist.IDListCount > identifierListMax(tlist) && !insideFnOrValues:
		numOffset := 0
		if f.cfg.IndentColumns {
			numOffset = f.cfg.Width
		}
		if f.cfg.Char == '\t' {
			numOffset = 1
		}
		f.withOffsetDelta(numOffset, func() {
			f.splitIdentifierList(tlist)
		})
	case tlist.IDListCount > identifierListMax(tlist):
		f.splitIdentifierListNested(tlist)
	}
	f.walkChildren(tlist)
}

// splitIdentifierListNested is the Function/Values-nested branch: when an
// argument list threatens to run past wrap_after and it sits inside a
// Function call, the continuation indents under the function's opening
// paren (offset shifted back by the function name's length) instead of the
// ambient indent column (spec.md §4.5; SPEC_FULL.md §4 item 6).
func (f *Filter) splitIdentifierListNested(tlist *tree.TokenList) {
	ids := tlist.GetIdentifiers()
	if len(ids) <= 1 {
		return
	}
	ids = ids[1:]

	endAt := f.offset
	for _, n := range ids {
		endAt += len(n.Value()) + 1
	}
	adjusted := 0
	if f.cfg.WrapAfter > 0 && endAt > f.cfg.WrapAfter-f.offset && f.lastFunc != nil {
		adjusted = -len(f.lastFunc.Value()) - 1
	}
	f.withOffsetDelta(adjusted, func() {
		f.withIndent(1, func() {
			if adjusted < 0 {
				if idx := tree.TokenIndex(tlist, ids[0]); idx >= 0 {
					f.nl(tlist, idx, 0)
				}
			}
			position := 0
			for _, n := range ids {
				position += len(n.Value()) + 1
				if f.cfg.WrapAfter > 0 && position > f.cfg.WrapAfter-f.offset {
					if idx := tree.TokenIndex(tlist, n); idx >= 0 {
						f.nl(tlist, idx, 0)
					}
					position = 0
				}
			}
		})
	})
}

// splitIdentifierList tracks the running output column (reset after every
// forced break) and inserts a newline once it crosses wrap_after,
// honoring comma_first (SPEC_FULL.md §4 item 6).
func (f *Filter) splitIdentifierList(tlist *tree.TokenList) {
	resetCol := f.lineStart()
	col := resetCol
	idx := 0
	for idx < len(tlist.Children) {
		c := tlist.Children[idx]
		tok, isComma := c.(*tree.Token)
		isComma = isComma && tok.Match(token.Punctuation, ",")
		if !isComma {
			col += len(c.Value())
			idx++
			continue
		}
		if f.cfg.CommaFirst {
			if col > f.cfg.WrapAfter {
				f.nl(tlist, idx, 0)
				col = resetCol
				idx++
			}
			col += len(c.Value())
			idx++
			continue
		}
		col += len(c.Value())
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		if next != nil && col > f.cfg.WrapAfter {
			f.nl(tlist, nidx, 0)
			col = resetCol
			idx = nidx + 1
			continue
		}
		idx++
	}
}

// processOpeningClause implements the shared SelectProjection/ClauseWith/
// ClausePartitionBy/ClauseOrderBy/ClauseGroupBy policy: indent offset =
// column-of-opener + opening_keyword_length + 1.
func (f *Filter) processOpeningClause(tlist *tree.TokenList) {
	colStart := f.col
	width := tlist.OpeningKeywordLength
	if f.aligned {
		width = f.alignedKwdWidth(tlist)
	}
	f.withOffset(colStart+width+1, func() {
		f.walkChildren(tlist)
	})
}

// alignedKwdWidth is AlignedIndentFilter's `_get_kwd_offset` override:
// right-align to the longest opening keyword among sibling clauses in the
// same parent (spec.md §4.5 "Aligned-indent variant").
func (f *Filter) alignedKwdWidth(tlist *tree.TokenList) int {
	max := tlist.OpeningKeywordLength
	if parent := tlist.Parent(); parent != nil {
		for _, sib := range parent.GetSections() {
			if sib.OpeningKeywordLength > max {
				max = sib.OpeningKeywordLength
			}
		}
	}
	return max
}

// processClauseFrom implements the ClauseFrom policy: pad by the sibling
// SelectProjection's keyword length minus FROM's, so its continuation
// lines start at the same column as the projection list.
func (f *Filter) processClauseFrom(tlist *tree.TokenList) {
	pad := 0
	if parent := tlist.Parent(); parent != nil {
		for _, sib := range parent.GetSections() {
			if sib.Kind == tree.SelectProjection {
				pad = sib.OpeningKeywordLength - tlist.OpeningKeywordLength
				break
			}
		}
	}
	colStart := f.col
	f.withOffset(colStart+tlist.OpeningKeywordLength+1+pad, func() {
		f.walkChildren(tlist)
	})
}

// processValues implements the Values policy: newline before VALUES,
// newline between parenthesized tuples (comma-first places it before the
// comma).
func (f *Filter) processValues(tlist *tree.TokenList) {
	if len(tlist.Children) > 0 {
		if tok, ok := tlist.Children[0].(*tree.Token); ok && tok.Match(token.Keyword, "VALUES") {
			f.nl(tlist, 0, 0)
		}
	}
	idx := 0
	tupleSeen := false
	for idx < len(tlist.Children) {
		g, ok := tlist.Children[idx].(*tree.TokenList)
		if !ok || g.Kind != tree.Parenthesis {
			idx++
			continue
		}
		if tupleSeen {
			breakIdx := idx
			if f.cfg.CommaFirst {
				if pidx, prev := tree.TokenPrev(tlist, idx, true, true); prev != nil {
					if pt, ok := prev.(*tree.Token); ok && pt.Match(token.Punctuation, ",") {
						breakIdx = pidx
					}
				}
			}
			f.nl(tlist, breakIdx, 0)
			idx++
		}
		tupleSeen = true
		idx++
	}
	f.walkChildren(tlist)
}
