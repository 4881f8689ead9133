package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// statementEnd walks forward from a statement's anchor clause and returns
// the index of the last token still belonging to it — stopping before a
// top-level semicolon or a UNION/INTERSECT/EXCEPT set operator.
func statementEnd(tlist *tree.TokenList, from int) int {
	last := from
	idx := from
	for {
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		if next == nil {
			break
		}
		if tok, ok := next.(*tree.Token); ok {
			if tok.Match(token.Punctuation, ";") {
				break
			}
			if tok.Match(token.Keyword, "UNION", "INTERSECT", "EXCEPT") {
				break
			}
		}
		last = nidx
		idx = nidx
	}
	return last
}

// precedingClauseWith reports the index of an immediately preceding
// ClauseWith sibling, absorbed as the start of the wrapped statement.
func precedingClauseWith(tlist *tree.TokenList, idx int) (int, bool) {
	pidx, prev := tree.TokenPrev(tlist, idx, true, true)
	pg, ok := prev.(*tree.TokenList)
	return pidx, ok && pg.Kind == tree.ClauseWith
}

// groupStatementSelect wraps a SelectProjection (the product of pass 27,
// which already includes the SELECT keyword) together with everything up to
// the next statement boundary into StatementSelect, absorbing a preceding
// ClauseWith (spec.md §4.3 pass 30).
func groupStatementSelect(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		g, ok := tlist.Children[idx].(*tree.TokenList)
		if !ok {
			idx++
			continue
		}
		if g.Kind != tree.SelectProjection {
			if g.Kind != tree.StatementSelect {
				groupStatementSelect(g, sink)
			}
			idx++
			continue
		}
		from := idx
		if pidx, has := precedingClauseWith(tlist, idx); has {
			from = pidx
		}
		to := statementEnd(tlist, idx)
		if wg := wrapSafely(tlist, tree.StatementSelect, from, to, false, sink, "group_statement_select"); wg != nil {
			idx = from + 1
			continue
		}
		idx++
	}
}

func isStatementOperand(n tree.Node) bool {
	g, ok := n.(*tree.TokenList)
	return ok && (g.Kind == tree.StatementSelect || g.Kind == tree.StatementUnion)
}

// groupStatementUnion joins adjacent StatementSelect/StatementUnion groups
// separated by UNION [ALL]/INTERSECT/EXCEPT into a single StatementUnion,
// extending so a chain of more than two branches collapses into one group
// (spec.md §4.3 pass 31).
func groupStatementUnion(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		tok, ok := child.(*tree.Token)
		if !ok || !tok.Match(token.Keyword, "UNION", "INTERSECT", "EXCEPT") {
			if g, ok := child.(*tree.TokenList); ok && g.Kind != tree.StatementUnion {
				groupStatementUnion(g, sink)
			}
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		if !isStatementOperand(prev) {
			idx++
			continue
		}
		cursor := idx
		if nidx0, next0 := tree.TokenNext(tlist, idx, true, true, false); next0 != nil {
			if t0, ok := next0.(*tree.Token); ok && t0.Match(token.Keyword, "ALL") {
				cursor = nidx0
			}
		}
		nidx, next := tree.TokenNext(tlist, cursor, true, true, false)
		if !isStatementOperand(next) {
			idx++
			continue
		}
		if g := wrapSafely(tlist, tree.StatementUnion, pidx, nidx, true, sink, "group_statement_union"); g != nil {
			idx = pidx + 1
			continue
		}
		idx++
	}
}

// groupStatementInsert wraps a ClauseInsert (the product of pass 29, which
// already includes the INSERT [INTO] keyword and target table) together
// with everything up to the next statement boundary into StatementInsert,
// absorbing a preceding ClauseWith (spec.md §4.3 pass 32).
func groupStatementInsert(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		g, ok := tlist.Children[idx].(*tree.TokenList)
		if !ok {
			idx++
			continue
		}
		if g.Kind != tree.ClauseInsert {
			if g.Kind != tree.StatementInsert {
				groupStatementInsert(g, sink)
			}
			idx++
			continue
		}
		from := idx
		if pidx, has := precedingClauseWith(tlist, idx); has {
			from = pidx
		}
		to := statementEnd(tlist, idx)
		if wg := wrapSafely(tlist, tree.StatementInsert, from, to, false, sink, "group_statement_insert"); wg != nil {
			idx = from + 1
			continue
		}
		idx++
	}
}
