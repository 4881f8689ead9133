package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupConditionsList collapses `lhs AND rhs` / `lhs OR rhs` (rhs may carry
// a leading NOT) into ConditionsList when both sides are
// Comparison/Parenthesis/ConditionsList/Identifier, extending so a chain of
// `a AND b AND c` collapses into one group. The AND immediately following a
// BETWEEN lower bound is skipped — it is part of the BETWEEN range, not a
// boolean junction (spec.md §4.3 pass 21).
func groupConditionsList(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.ConditionsList {
				groupConditionsList(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Match(token.Keyword, "AND", "OR") {
			idx++
			continue
		}
		if token.Canonical(tok.Val) == "AND" && isBetweenAnd(tlist, idx) {
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		if !isConditionOperand(prev) {
			idx++
			continue
		}
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		if t, ok := next.(*tree.Token); ok && t.Match(token.Keyword, "NOT") {
			nidx, next = tree.TokenNext(tlist, nidx, true, true, false)
		}
		if !isConditionOperand(next) {
			idx++
			continue
		}
		if g := wrapSafely(tlist, tree.ConditionsList, pidx, nidx, true, sink, "group_conditions_list"); g != nil {
			g.ConditionsCount++
			idx = pidx + 1
			continue
		}
		idx++
	}
}

func isConditionOperand(n tree.Node) bool {
	g, ok := n.(*tree.TokenList)
	if !ok {
		return false
	}
	switch g.Kind {
	case tree.Comparison, tree.Parenthesis, tree.ConditionsList, tree.Identifier:
		return true
	}
	return false
}

func isBetweenAnd(tlist *tree.TokenList, andIdx int) bool {
	pidx, prev := tree.TokenPrev(tlist, andIdx, true, true)
	if prev == nil {
		return false
	}
	_, before := tree.TokenPrev(tlist, pidx, true, true)
	bt, ok := before.(*tree.Token)
	return ok && bt.Match(token.Keyword, "BETWEEN")
}

// alignComments is a deliberate pass-through placeholder: spec.md §9 Open
// Question (i) leaves this pass's exact semantics undecided, so it performs
// no grouping rather than inventing behavior (spec.md §4.3 pass 22).
func alignComments(tlist *tree.TokenList, sink diag.Sink) {
}
