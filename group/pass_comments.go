package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupComments collapses a Comment token together with the Comment and
// non-newline whitespace tokens directly following it (trailing whitespace
// included) into a single Comment group; a comment with no such follower
// stays a bare token. Grounded on
// sqlparse/engine/grouping.py's `group_comments` (spec.md §4.3 pass 1).
func groupComments(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			groupComments(g, sink)
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.IsComment() {
			idx++
			continue
		}
		end := idx
		for {
			nidx, next := tree.TokenNext(tlist, end, false, false, false)
			if next == nil {
				break
			}
			nt, ok := next.(*tree.Token)
			if !ok {
				break
			}
			if nt.IsComment() || (nt.IsWhitespace() && !nt.Typ.Is(token.WhitespaceNewline)) {
				end = nidx
				continue
			}
			break
		}
		if end == idx {
			idx++
			continue
		}
		g := wrapSafely(tlist, tree.CommentGroup, idx, end, false, sink, "group_comments")
		if g == nil {
			idx++
			continue
		}
		idx++
	}
}
