package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/internal/groupfault"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupBrackets wraps `[ ]` spans as SquareBrackets. Grounded on
// sqlparse's `group_brackets` (spec.md §4.3 pass 2). Unbalanced brackets
// are tolerated silently (only parenthesis balance is fatal).
func groupBrackets(tlist *tree.TokenList, sink diag.Sink) {
	GroupMatching(tlist, tree.SquareBrackets, bracketOpen, bracketClose, sink, "group_brackets")
}

// groupParenthesis wraps `( )` spans as Parenthesis, additionally setting
// IsCodeBlockDelimiter (preceding non-ws token is THEN/AS) and IsSubQuery
// (first meaningful child is the SELECT DML keyword). Grounded on
// sqlparse's `group_parenthesis` (spec.md §4.3 pass 3). An unmatched open
// parenthesis is the one fatal UnbalancedParenthesis condition.
func groupParenthesis(tlist *tree.TokenList, sink diag.Sink) error {
	if err := GroupMatching(tlist, tree.Parenthesis, parenOpen, parenClose, sink, "group_parenthesis"); err != nil {
		return groupfault.UnbalancedParenthesis()
	}
	annotateParens(tlist)
	return nil
}

func annotateParens(tlist *tree.TokenList) {
	for i, c := range tlist.Children {
		g, ok := c.(*tree.TokenList)
		if !ok {
			continue
		}
		if g.Kind == tree.Parenthesis {
			_, prev := tree.TokenPrev(tlist, i, true, true)
			if pt, ok := prev.(*tree.Token); ok && pt.Match(token.Keyword, "THEN", "AS") {
				g.IsCodeBlockDelimiter = true
			}
			for j, inner := range g.Children {
				if j == 0 {
					continue // the opening "(" itself
				}
				it, ok := inner.(*tree.Token)
				if !ok {
					break
				}
				if it.IsWhitespace() || it.IsComment() {
					continue
				}
				if it.Match(token.KeywordDML, "SELECT") {
					g.IsSubQuery = true
				}
				break
			}
		}
		annotateParens(g)
	}
}
