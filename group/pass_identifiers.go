package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupPeriod collapses `identifier-like . identifier-like` into Identifier
// (qualified name), extending left-to-right so `a.b.c` becomes a single
// Identifier (spec.md §4.3 pass 7).
func groupPeriod(tlist *tree.TokenList, sink diag.Sink) {
	Group(tlist, Opts{
		Kind:      tree.Identifier,
		Match:     func(tok *tree.Token) bool { return tok.Match(token.Punctuation, ".") },
		ValidPrev: isNameLike,
		ValidNext: isNameLike,
		Post: func(tlist *tree.TokenList, pidx, tidx, nidx int) (int, int) {
			return pidx, nidx
		},
		Extend:  true,
		Recurse: true,
	}, sink, "group_period")
}

// groupArrays collapses `<name-like> <SquareBrackets>` into Identifier
// (extend), without descending into the bracket's own contents (spec.md
// §4.3 pass 8).
func groupArrays(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind == tree.SquareBrackets {
				idx++
				continue
			}
			if g.Kind != tree.Identifier {
				groupArrays(g, sink)
			}
		}
		if isNameLike(child) {
			nidx, next := tree.TokenNext(tlist, idx, true, true, false)
			if ng, ok := next.(*tree.TokenList); ok && ng.Kind == tree.SquareBrackets {
				if g := wrapSafely(tlist, tree.Identifier, idx, nidx, true, sink, "group_arrays"); g != nil {
					idx++
					continue
				}
			}
		}
		idx++
	}
}

// groupIdentifier lifts bare Name/String.Symbol/Name.Placeholder tokens to
// Identifier; placeholders additionally absorb an adjacent Identifier
// neighbor on either side (spec.md §4.3 pass 9).
func groupIdentifier(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.Identifier {
				groupIdentifier(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		switch {
		case tok.Typ.InAny(token.Name, token.StringSymbol) && !tok.Typ.Is(token.NameBuiltin):
			if g := wrapSafely(tlist, tree.Identifier, idx, idx, false, sink, "group_identifier"); g != nil {
				idx++
				continue
			}
		case tok.Typ.Is(token.NamePlaceholder):
			from, to := idx, idx
			if pidx, prev := tree.TokenPrev(tlist, idx, true, true); isIdentifierGroup(prev) {
				from = pidx
			}
			if nidx, next := tree.TokenNext(tlist, idx, true, true, false); isIdentifierGroup(next) {
				to = nidx
			}
			if g := wrapSafely(tlist, tree.Identifier, from, to, false, sink, "group_identifier"); g != nil {
				idx = from + 1
				continue
			}
		}
		idx++
	}
}

func isIdentifierGroup(n tree.Node) bool {
	g, ok := n.(*tree.TokenList)
	return ok && g.Kind == tree.Identifier
}

// groupSignedIdentifier wraps a unary `-` whose right neighbor is an
// Identifier and whose left neighbor is not, into SignedIdentifier (spec.md
// §4.3 pass 10).
func groupSignedIdentifier(tlist *tree.TokenList, sink diag.Sink) {
	Group(tlist, Opts{
		Kind:      tree.SignedIdentifier,
		Match:     func(tok *tree.Token) bool { return tok.Match(token.Operator, "-") },
		ValidPrev: func(n tree.Node) bool { return !isIdentifierGroup(n) },
		ValidNext: isIdentifierGroup,
		Post: func(tlist *tree.TokenList, pidx, tidx, nidx int) (int, int) {
			return tidx, nidx
		},
		Recurse: true,
	}, sink, "group_signed_identifier")
}

// groupOrder extends an Identifier/number immediately followed by
// Keyword.Order (ASC/DESC) into Identifier (spec.md §4.3 pass 11).
func groupOrder(tlist *tree.TokenList, sink diag.Sink) {
	Group(tlist, Opts{
		Kind:  tree.Identifier,
		Match: func(tok *tree.Token) bool { return tok.Typ.Is(token.KeywordOrder) },
		ValidPrev: func(n tree.Node) bool {
			if isNameLike(n) {
				return true
			}
			t, ok := n.(*tree.Token)
			return ok && t.Typ.Is(token.Number)
		},
		Post: func(tlist *tree.TokenList, pidx, tidx, nidx int) (int, int) {
			return pidx, tidx
		},
		Extend:  true,
		Recurse: true,
	}, sink, "group_order")
}

// groupTypecasts collapses `x :: T` into an Identifier span (spec.md §4.3
// pass 12).
func groupTypecasts(tlist *tree.TokenList, sink diag.Sink) {
	Group(tlist, Opts{
		Kind:      tree.Identifier,
		Match:     func(tok *tree.Token) bool { return tok.Match(token.Operator, "::") },
		ValidPrev: isNameLike,
		ValidNext: isNameLike,
		Post: func(tlist *tree.TokenList, pidx, tidx, nidx int) (int, int) {
			return pidx, nidx
		},
		Extend:  true,
		Recurse: true,
	}, sink, "group_typecasts")
}

// groupTzcasts recognizes `<name-like> AT TIME ZONE '<tz>'` and collapses
// it into Identifier (spec.md §4.3 pass 13).
func groupTzcasts(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.Identifier {
				groupTzcasts(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Match(token.Keyword, "AT") {
			idx++
			continue
		}
		i1, t1 := tree.TokenNext(tlist, idx, true, true, false)
		tok1, ok := t1.(*tree.Token)
		if !ok || !tok1.Match(token.Keyword, "TIME") {
			idx++
			continue
		}
		i2, t2 := tree.TokenNext(tlist, i1, true, true, false)
		tok2, ok := t2.(*tree.Token)
		if !ok || !tok2.Match(token.Keyword, "ZONE") {
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		if !isNameLike(prev) {
			idx++
			continue
		}
		to := i2
		if i3, t3 := tree.TokenNext(tlist, i2, true, true, false); t3 != nil {
			if lit, ok := t3.(*tree.Token); ok && lit.Typ.Is(token.String) {
				to = i3
			}
		}
		if g := wrapSafely(tlist, tree.Identifier, pidx, to, true, sink, "group_tzcasts"); g != nil {
			idx = pidx + 1
			continue
		}
		idx++
	}
}

// groupTypedLiteral recognizes DATE/TIME/TIMESTAMP/INTERVAL followed by a
// single-quoted string literal as TypedLiteral, with a second phase that
// extends an INTERVAL literal to absorb a trailing unit keyword (DAY,
// MONTH, …), e.g. `INTERVAL '3' DAY` (spec.md §4.3 pass 14; SPEC_FULL.md
// §4.1).
func groupTypedLiteral(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.TypedLiteral {
				groupTypedLiteral(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Match(token.Keyword, "DATE", "TIME", "TIMESTAMP", "INTERVAL") {
			idx++
			continue
		}
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		str, ok := next.(*tree.Token)
		if !ok || !str.Typ.Is(token.StringSingle) {
			idx++
			continue
		}
		to := nidx
		if token.Canonical(tok.Val) == "INTERVAL" {
			if uidx, u := tree.TokenNext(tlist, nidx, true, true, false); u != nil {
				if ut, ok := u.(*tree.Token); ok && ut.IsKeyword() {
					switch token.Canonical(ut.Val) {
					case "DAY", "MONTH", "YEAR", "HOUR", "MINUTE", "SECOND":
						to = uidx
					}
				}
			}
		}
		if g := wrapSafely(tlist, tree.TypedLiteral, idx, to, false, sink, "group_typed_literal"); g != nil {
			idx++
			continue
		}
		idx++
	}
}
