package filters

import (
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// SpacesAroundOperatorsFilter inserts exactly one space before and after
// an Operator/Operator.Comparison/Assignment token that does not already
// have adjacent whitespace, skipping operators in unary position (no
// preceding sibling in the same group) — SPEC_FULL.md §4 item 4.
type SpacesAroundOperatorsFilter struct{}

// Process mutates stmt in place and returns it.
func (SpacesAroundOperatorsFilter) Process(stmt *tree.TokenList) *tree.TokenList {
	spacesAroundOperators(stmt)
	return stmt
}

func isOperatorToken(t *tree.Token) bool {
	return t.Typ.Is(token.Operator) || t.Typ.Is(token.OperatorComparison) || t.Typ.Is(token.Assignment)
}

func spacesAroundOperators(tlist *tree.TokenList) {
	for _, c := range tlist.Children {
		if g, ok := c.(*tree.TokenList); ok {
			spacesAroundOperators(g)
		}
	}

	idx := 0
	for idx < len(tlist.Children) {
		tok, ok := tlist.Children[idx].(*tree.Token)
		if !ok || !isOperatorToken(tok) || idx == 0 {
			idx++
			continue
		}

		if pt, ok := tlist.Children[idx-1].(*tree.Token); !ok || !pt.IsWhitespace() {
			tlist.InsertBefore(idx, tree.NewToken(token.Whitespace, " "))
			idx++
		}

		nextIdx := idx + 1
		if nextIdx < len(tlist.Children) {
			if nt, ok := tlist.Children[nextIdx].(*tree.Token); !ok || !nt.IsWhitespace() {
				tlist.InsertBefore(nextIdx, tree.NewToken(token.Whitespace, " "))
			}
		}
		idx++
	}
}
