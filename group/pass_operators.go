package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupOperator collapses an arithmetic/wildcard operator with valid
// operand neighbors into Operation, normalizing the operator's lexical
// type to plain Operator (a Wildcard `*` used as multiplication loses its
// Wildcard tag once it is recognized as an operator), and extending the
// span to include a leading unary sign immediately before the left operand
// (spec.md §4.3 pass 15).
func groupOperator(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.Operation {
				groupOperator(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !(tok.Typ.Is(token.Operator) || tok.Typ.Is(token.Wildcard)) {
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		if !isOperatorOperandLike(prev) || !isOperatorOperandLike(next) {
			idx++
			continue
		}

		if tok.Typ.Is(token.Wildcard) {
			tok.Typ = token.Operator
		}

		from, to := pidx, nidx
		if beforeIdx, before := tree.TokenPrev(tlist, pidx, true, true); before != nil {
			if bt, ok := before.(*tree.Token); ok && bt.Match(token.Operator, "+", "-") {
				from = beforeIdx
			}
		}

		if g := wrapSafely(tlist, tree.Operation, from, to, false, sink, "group_operator"); g != nil {
			idx = from + 1
			continue
		}
		idx++
	}
}

// groupComparison collapses `x <cmp> y` into Comparison; operands must be
// operand-like (literal, name-like, Parenthesis, Function, Operation,
// TypedLiteral, or the keyword NULL — spec.md §4.3 pass 16, §9 design note
// (iii): NULL is accepted on either side regardless of which comparison
// operator is used, matching the original's ambiguous-but-unchanged
// behavior).
func groupComparison(tlist *tree.TokenList, sink diag.Sink) {
	Group(tlist, Opts{
		Kind:      tree.Comparison,
		Match:     func(tok *tree.Token) bool { return tok.Typ.Is(token.OperatorComparison) },
		ValidPrev: isOperandLike,
		ValidNext: isOperandLike,
		Post: func(tlist *tree.TokenList, pidx, tidx, nidx int) (int, int) {
			return pidx, nidx
		},
		Recurse: true,
	}, sink, "group_comparison")
}
