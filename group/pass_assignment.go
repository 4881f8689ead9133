package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupAssignment collapses `x := expr` up to (but excluding) the next
// statement-terminating semicolon into Assignment (spec.md §4.3 pass 20).
func groupAssignment(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.Assignment {
				groupAssignment(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Typ.Is(token.Assignment) {
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		if !isNameLike(prev) {
			idx++
			continue
		}
		to := idx
		for j := idx + 1; j < len(tlist.Children); j++ {
			if t, ok := tlist.Children[j].(*tree.Token); ok && t.Match(token.Punctuation, ";") {
				break
			}
			to = j
		}
		if to == idx {
			idx++
			continue
		}
		if g := wrapSafely(tlist, tree.Assignment, pidx, to, false, sink, "group_assignment"); g != nil {
			idx = pidx + 1
			continue
		}
		idx++
	}
}
