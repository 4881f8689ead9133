package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupAs collapses `expr AS alias` into Identifier. valid_prev excludes a
// keyword other than NULL and a non-subquery Parenthesis; valid_next
// excludes a DML/DDL/CTE-typed keyword and a non-subquery Parenthesis
// (spec.md §4.3 pass 17).
func groupAs(tlist *tree.TokenList, sink diag.Sink) {
	Group(tlist, Opts{
		Kind:  tree.Identifier,
		Match: func(tok *tree.Token) bool { return tok.Match(token.Keyword, "AS") },
		ValidPrev: func(n tree.Node) bool {
			if n == nil || isNonSubqueryParen(n) {
				return false
			}
			if t, ok := n.(*tree.Token); ok && t.IsKeyword() && !t.Match(token.Keyword, "NULL") {
				return false
			}
			return true
		},
		ValidNext: func(n tree.Node) bool {
			if n == nil || isDMLorDDL(n) || isNonSubqueryParen(n) {
				return false
			}
			return true
		},
		Post: func(tlist *tree.TokenList, pidx, tidx, nidx int) (int, int) {
			return pidx, nidx
		},
		Recurse: true,
	}, sink, "group_as")
}

// groupSubQuery re-kinds an Identifier whose first meaningful child is a
// subquery-flagged Parenthesis into SubQuery (covers `(subquery) [AS]
// alias`, already merged into one Identifier by group_as), and wraps any
// remaining bare subquery Parenthesis (no alias) as a lone SubQuery — every
// SubQuery group contains exactly one Parenthesis with IsSubQuery set
// (spec.md §4.3 pass 18, §8 invariant 6).
func groupSubQuery(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		g, ok := child.(*tree.TokenList)
		if !ok {
			idx++
			continue
		}
		if g.Kind == tree.Identifier && firstMeaningfulIsSubQueryParen(g) {
			g.Kind = tree.SubQuery
		}
		if g.Kind != tree.SubQuery {
			groupSubQuery(g, sink)
		}
		idx++
	}

	idx = 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok && g.Kind == tree.Parenthesis && g.IsSubQuery {
			if wrapped := wrapSafely(tlist, tree.SubQuery, idx, idx, false, sink, "group_sub_query"); wrapped != nil {
				idx++
				continue
			}
		}
		idx++
	}
}

func firstMeaningfulIsSubQueryParen(g *tree.TokenList) bool {
	for _, c := range g.Children {
		if t, ok := c.(*tree.Token); ok {
			if t.IsWhitespace() {
				continue
			}
			return false
		}
		p, ok := c.(*tree.TokenList)
		return ok && p.Kind == tree.Parenthesis && p.IsSubQuery
	}
	return false
}

// groupAliased extends a Function/Case/Identifier/Operation/Comparison/
// WindowFunction/number immediately followed by an Identifier into
// Identifier — an implicit (no AS) alias (spec.md §4.3 pass 19).
func groupAliased(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		anchor := false
		if g, ok := child.(*tree.TokenList); ok {
			switch g.Kind {
			case tree.Function, tree.Case, tree.Identifier, tree.Operation, tree.Comparison, tree.WindowFunction:
				anchor = true
			}
			if g.Kind != tree.Identifier {
				groupAliased(g, sink)
			}
		} else if t, ok := child.(*tree.Token); ok && t.Typ.Is(token.Number) {
			anchor = true
		}
		if anchor {
			nidx, next := tree.TokenNext(tlist, idx, true, true, false)
			if isIdentifierGroup(next) {
				if g := wrapSafely(tlist, tree.Identifier, idx, nidx, true, sink, "group_aliased"); g != nil {
					idx++
					continue
				}
			}
		}
		idx++
	}
}
