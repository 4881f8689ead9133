// Package filters implements the ancillary tree walks (C5): strip-comments,
// strip-whitespace, spaces-around-operators, and the final serializer.
// Grounded on sqlparse/filters/others.py.
package filters

import "github.com/freeeve/sqlgroup/tree"

// StripCommentsFilter removes every CommentGroup and bare Comment token
// from the tree, recursively (spec.md §6).
type StripCommentsFilter struct{}

// Process mutates stmt in place and returns it.
func (StripCommentsFilter) Process(stmt *tree.TokenList) *tree.TokenList {
	stripComments(stmt)
	return stmt
}

func stripComments(tlist *tree.TokenList) {
	kept := tlist.Children[:0:0]
	for _, c := range tlist.Children {
		switch v := c.(type) {
		case *tree.TokenList:
			if v.Kind == tree.CommentGroup {
				continue
			}
			stripComments(v)
			kept = append(kept, v)
		case *tree.Token:
			if v.IsComment() {
				continue
			}
			kept = append(kept, v)
		}
	}
	tlist.Children = kept
}
