package group

import (
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// Delimiter matchers (M_OPEN/M_CLOSE) for the kinds GroupMatching pairs up,
// grounded on each construct's class-level matcher constants (spec.md §3).
var (
	parenOpen  = tree.Matcher{Type: token.Punctuation, Values: []string{"("}}
	parenClose = tree.Matcher{Type: token.Punctuation, Values: []string{")"}}

	bracketOpen  = tree.Matcher{Type: token.Punctuation, Values: []string{"["}}
	bracketClose = tree.Matcher{Type: token.Punctuation, Values: []string{"]"}}

	caseOpen  = tree.Matcher{Type: token.Keyword, Values: []string{"CASE"}}
	blockEnd  = tree.Matcher{Type: token.Keyword, Values: []string{"END"}}

	ifOpen    = tree.Matcher{Type: token.Keyword, Values: []string{"IF"}}
	forOpen   = tree.Matcher{Type: token.Keyword, Values: []string{"FOR"}}
	beginOpen = tree.Matcher{Type: token.Keyword, Values: []string{"BEGIN"}}
)
