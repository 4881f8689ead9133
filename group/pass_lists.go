package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupIdentifierList collapses a comma-separated run of
// identifiers/functions/comparisons/subqueries (and related operand kinds)
// into IdentifierList, extending across the whole run and recording the
// number of top-level items in IDListCount (spec.md §4.3 pass 23).
func groupIdentifierList(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.IdentifierList {
				groupIdentifierList(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Match(token.Punctuation, ",") {
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		if !isListItem(prev) || !isListItem(next) {
			idx++
			continue
		}
		if g := wrapSafely(tlist, tree.IdentifierList, pidx, nidx, true, sink, "group_identifier_list"); g != nil {
			if g.IDListCount == 0 {
				g.IDListCount = 1
			}
			g.IDListCount++
			idx = pidx + 1
			continue
		}
		idx++
	}
}

func isListItem(n tree.Node) bool {
	switch v := n.(type) {
	case *tree.Token:
		if v.Typ.InAny(token.Number, token.String, token.Wildcard) {
			return true
		}
		return v.Match(token.Keyword, "NULL", "DEFAULT")
	case *tree.TokenList:
		switch v.Kind {
		case tree.Identifier, tree.Function, tree.Comparison, tree.SubQuery,
			tree.Operation, tree.TypedLiteral, tree.WindowFunction, tree.Case,
			tree.SignedIdentifier:
			return true
		}
	}
	return false
}
