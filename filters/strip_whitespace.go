package filters

import "github.com/freeeve/sqlgroup/tree"
import "github.com/freeeve/sqlgroup/token"

// StripWhitespaceFilter deletes leading/trailing whitespace tokens from
// every group and collapses an interior non-newline whitespace token's
// value down to a single space (SPEC_FULL.md §4 item 5), recursively.
type StripWhitespaceFilter struct{}

// Process mutates stmt in place and returns it.
func (StripWhitespaceFilter) Process(stmt *tree.TokenList) *tree.TokenList {
	stripWhitespace(stmt)
	return stmt
}

func stripWhitespace(tlist *tree.TokenList) {
	for _, c := range tlist.Children {
		if g, ok := c.(*tree.TokenList); ok {
			stripWhitespace(g)
		}
	}

	for len(tlist.Children) > 0 {
		t, ok := tlist.Children[0].(*tree.Token)
		if !ok || !t.IsWhitespace() {
			break
		}
		tlist.Children = tlist.Children[1:]
	}
	for len(tlist.Children) > 0 {
		last := len(tlist.Children) - 1
		t, ok := tlist.Children[last].(*tree.Token)
		if !ok || !t.IsWhitespace() {
			break
		}
		tlist.Children = tlist.Children[:last]
	}

	for _, c := range tlist.Children {
		t, ok := c.(*tree.Token)
		if !ok || !t.IsWhitespace() || t.Typ.Is(token.WhitespaceNewline) {
			continue
		}
		if t.Val != " " {
			t.Val = " "
		}
	}
}
