package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/tree"
)

// groupCase, groupIf, groupFor, groupBegin pair CASE…END, IF…END IF,
// FOR…END FOR, BEGIN…END via delimiter matching (spec.md §4.3 pass 4).
// Imbalance is tolerated silently for all four (only parenthesis balance
// is fatal).
func groupCase(tlist *tree.TokenList, sink diag.Sink) {
	GroupMatching(tlist, tree.Case, caseOpen, blockEnd, sink, "group_case")
}

func groupIf(tlist *tree.TokenList, sink diag.Sink) {
	GroupMatching(tlist, tree.If, ifOpen, blockEnd, sink, "group_if")
}

func groupFor(tlist *tree.TokenList, sink diag.Sink) {
	GroupMatching(tlist, tree.For, forOpen, blockEnd, sink, "group_for")
}

func groupBegin(tlist *tree.TokenList, sink diag.Sink) {
	GroupMatching(tlist, tree.Begin, beginOpen, blockEnd, sink, "group_begin")
}
