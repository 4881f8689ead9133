// Package group implements the pass framework (C2) and the fixed 32-pass
// grouping pipeline (C3) that assembles a flat token stream into the parse
// tree described by spec.md §3–§4.3. Grounded on
// sqlparse/engine/grouping.py's `_group`/`_group_matching`.
package group

import (
	"fmt"

	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/internal/groupfault"
	"github.com/freeeve/sqlgroup/tree"
)

// MatchFunc tests whether a leaf token is the pattern's central anchor.
type MatchFunc func(tok *tree.Token) bool

// NeighborFunc validates a (possibly nil) neighbor node.
type NeighborFunc func(n tree.Node) bool

// PostFunc computes the [from,to] span to wrap, given the indices of the
// last non-whitespace child before the match (pidx), the match itself
// (tidx), and the next non-whitespace child after it (nidx). The default
// (nil) wraps exactly [tidx,tidx].
type PostFunc func(tlist *tree.TokenList, pidx, tidx, nidx int) (from, to int)

// Opts configures a single Group pass.
type Opts struct {
	Kind      tree.Kind
	Match     MatchFunc
	ValidPrev NeighborFunc
	ValidNext NeighborFunc
	Post      PostFunc
	Extend    bool
	Recurse   bool
}

// Group is the infix-anchored pass driver (mirrors Python's `_group`):
// scan children linearly, and whenever Match fires with valid neighbors,
// collapse the computed span into a new group of Opts.Kind. Grounded on
// spec.md §4.2.
func Group(tlist *tree.TokenList, o Opts, sink diag.Sink, passName string) {
	if sink == nil {
		sink = diag.Noop
	}
	var prev tree.Node
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]

		if o.Recurse {
			if g, ok := child.(*tree.TokenList); ok && g.Kind != o.Kind {
				Group(g, o, sink, passName)
			}
		}

		tok, isTok := child.(*tree.Token)
		if isTok && o.Match(tok) {
			_, next := tree.TokenNext(tlist, idx, true, true, false)
			prevOK := o.ValidPrev == nil || o.ValidPrev(prev)
			nextOK := o.ValidNext == nil || o.ValidNext(next)
			if prevOK && nextOK {
				from, to := idx, idx
				if o.Post != nil {
					_, nidx := idx, -1
					if next != nil {
						nidx = tree.TokenIndex(tlist, next)
					}
					pidx := -1
					if prev != nil {
						pidx = tree.TokenIndex(tlist, prev)
					}
					from, to = o.Post(tlist, pidx, idx, nidx)
				}
				if from < 0 || to >= len(tlist.Children) || from > to {
					idx++
					continue
				}
				if o.Recurse {
					for i := idx + 1; i <= to && i < len(tlist.Children); i++ {
						if g, ok := tlist.Children[i].(*tree.TokenList); ok && g.Kind != o.Kind {
							Group(g, o, sink, passName)
						}
					}
				}
				group := wrapSafely(tlist, o.Kind, from, to, o.Extend, sink, passName)
				if group == nil {
					idx++
					continue
				}
				prev = group
				idx = from + 1
				continue
			}
		}

		if !(isTok && tok.IsWhitespace()) {
			prev = child
		}
		idx++
	}
}

// wrapSafely calls tree.GroupTokens, recovering from any panic so a single
// bad span cannot abort the rest of the pipeline (spec.md §9 "Swallowed
// errors in `_group`"): the failure is logged as an InternalGroupingError
// and the caller treats it as "nothing wrapped".
func wrapSafely(tlist *tree.TokenList, kind tree.Kind, from, to int, extend bool, sink diag.Sink, passName string) (result *tree.TokenList) {
	defer func() {
		if r := recover(); r != nil {
			err := groupfault.InternalGroupingError(passName, fmt.Errorf("%v", r))
			sink.Warn(nil, err.Error())
			result = nil
		}
	}()
	return tree.GroupTokens(tlist, kind, from, to, extend)
}

// GroupMatching is the delimiter-pairing driver (mirrors Python's
// `_group_matching`): a stack of open-delimiter indices, collapsing each
// open/close pair into a group of kind as soon as its close is found.
// Unknown-kind children are recursed into first. Returns a non-nil error
// only when the stack is non-empty at EOF (an unmatched open); callers
// decide whether that is fatal (only group_parenthesis treats it as such,
// per spec.md §4.3 pass 3).
func GroupMatching(tlist *tree.TokenList, kind tree.Kind, mOpen, mClose tree.Matcher, sink diag.Sink, passName string) error {
	if sink == nil {
		sink = diag.Noop
	}
	var stack []int
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]

		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != kind {
				GroupMatching(g, kind, mOpen, mClose, sink, passName)
			}
			idx++
			continue
		}

		tok := child.(*tree.Token)
		switch {
		case tok.IsWhitespace():
			idx++
		case mOpen.Match(tok):
			stack = append(stack, idx)
			idx++
		case mClose.Match(tok):
			if len(stack) == 0 {
				// Malformed input: a close with nothing open. Tolerated
				// (spec.md §4.2): skip and keep scanning.
				idx++
				continue
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g := wrapSafely(tlist, kind, openIdx, idx, false, sink, passName)
			if g == nil {
				idx++
				continue
			}
			idx = openIdx + 1
		default:
			idx++
		}
	}
	if len(stack) > 0 {
		return groupfault.UnbalancedParenthesis()
	}
	return nil
}
