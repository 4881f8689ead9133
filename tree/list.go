package tree

import "github.com/freeeve/sqlgroup/token"

// TokenList is a group: a token that owns an ordered sequence of children.
// It carries a Kind and the annotation fields the grouping/reindent
// pipeline attaches along the way (spec.md §3 "Attached attributes").
type TokenList struct {
	Kind     Kind
	Children []Node
	parent   *TokenList

	// Attached attributes (spec.md §3).
	IsCodeBlockDelimiter bool // Parenthesis: follows THEN/AS
	IsSubQuery           bool // Parenthesis: directly wraps a SELECT
	ConditionsCount      int  // ConditionsList: AND/OR junctions absorbed
	IDListCount          int  // IdentifierList: top-level identifier count
	OpeningKeywordLength int  // clause groups: length of introducer keyword
}

// NewTokenList creates an empty group of the given kind.
func NewTokenList(kind Kind) *TokenList {
	return &TokenList{Kind: kind}
}

// NewRoot wraps a flat token stream as the root Statement group — the
// entry point described by spec.md §6 "Input to core".
func NewRoot(flat []*Token) *TokenList {
	root := &TokenList{Kind: Statement}
	for _, tok := range flat {
		root.Append(tok)
	}
	return root
}

func (l *TokenList) Parent() *TokenList     { return l.parent }
func (l *TokenList) setParent(p *TokenList) { l.parent = p }

// Value is the in-order concatenation of every descendant token's value
// (invariant 1, spec.md §8: content preservation).
func (l *TokenList) Value() string {
	var b []byte
	for _, c := range l.Children {
		b = append(b, c.Value()...)
	}
	return string(b)
}

// Append adds a child at the end, taking ownership (setting its parent).
func (l *TokenList) Append(n Node) {
	n.setParent(l)
	l.Children = append(l.Children, n)
}

// IsGroup is always true for a TokenList; it exists to pair with
// Token.IsWhitespace/IsKeyword so callers can treat Node uniformly.
func (l *TokenList) IsGroup() bool { return true }

// InsertBefore splices n into Children at idx, taking ownership of n and
// shifting everything from idx onward one slot to the right. Used by the
// reindent walker (C4) to inject newline/whitespace tokens without
// disturbing any other child's identity or order.
func (l *TokenList) InsertBefore(idx int, n Node) {
	if idx < 0 || idx > len(l.Children) {
		return
	}
	n.setParent(l)
	l.Children = append(l.Children, nil)
	copy(l.Children[idx+1:], l.Children[idx:])
	l.Children[idx] = n
}

// --- C1 navigation primitives -------------------------------------------

// TokenIndex returns the index of n within l's Children, or -1.
func TokenIndex(l *TokenList, n Node) int {
	for i, c := range l.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// isSkippable reports whether n should be skipped given skipWS/skipCM.
func isSkippable(n Node, skipWS, skipCM bool) bool {
	if t, ok := n.(*Token); ok {
		if skipWS && t.IsWhitespace() {
			return true
		}
		if skipCM && t.IsComment() {
			return true
		}
	}
	return false
}

// TokenNext scans from idx+1 (or idx-1 if reverse) for the first
// non-skipped child, mirroring Python sqlparse's `token_next`.
func TokenNext(l *TokenList, idx int, skipWS, skipCM bool, reverse bool) (int, Node) {
	step := 1
	if reverse {
		step = -1
	}
	for i := idx + step; i >= 0 && i < len(l.Children); i += step {
		c := l.Children[i]
		if !isSkippable(c, skipWS, skipCM) {
			return i, c
		}
	}
	return -1, nil
}

// TokenPrev is TokenNext in reverse.
func TokenPrev(l *TokenList, idx int, skipWS, skipCM bool) (int, Node) {
	return TokenNext(l, idx, skipWS, skipCM, true)
}

// Matcher is a (lexical type, value set) pair used to recognize a token,
// e.g. a kind's M_OPEN/M_CLOSE.
type Matcher struct {
	Type   token.Type
	Values []string
}

// Match reports whether n (a leaf token) satisfies m. Groups never match a
// Matcher.
func (m Matcher) Match(n Node) bool {
	t, ok := n.(*Token)
	if !ok {
		return false
	}
	return t.Match(m.Type, m.Values...)
}

// imt implements the spec's generic "satisfies any of m/i/t" matching
// semantics (spec.md §4.1 "Matching semantics").
func imt(n Node, m []Matcher, kinds []Kind, types []token.Type) bool {
	for _, mm := range m {
		if mm.Match(n) {
			return true
		}
	}
	if l, ok := n.(*TokenList); ok {
		for _, k := range kinds {
			if l.Kind == k {
				return true
			}
		}
	}
	if t, ok := n.(*Token); ok {
		for _, ty := range types {
			if t.Typ.Is(ty) {
				return true
			}
		}
	}
	return false
}

// NextByOpts configures TokenNextBy.
type NextByOpts struct {
	M        []Matcher
	Kinds    []Kind
	Types    []token.Type
	Idx      int
	Reverse  bool
}

// TokenNextBy finds the next child (from Idx, exclusive) matching any of
// the supplied criteria, skipping nothing (callers combine with TokenNext
// when whitespace/comment skipping is also wanted).
func TokenNextBy(l *TokenList, o NextByOpts) (int, Node) {
	step := 1
	if o.Reverse {
		step = -1
	}
	for i := o.Idx + step; i >= 0 && i < len(l.Children); i += step {
		c := l.Children[i]
		if imt(c, o.M, o.Kinds, o.Types) {
			return i, c
		}
	}
	return -1, nil
}

// GroupTokens replaces the contiguous slice [from,to] (inclusive) with a
// new group of kind, whose children are that slice. If extend is true and
// the child at from is already a TokenList of kind, the span is absorbed
// into that existing group instead of wrapping again (spec.md §4.1).
func GroupTokens(l *TokenList, kind Kind, from, to int, extend bool) *TokenList {
	if from < 0 || to >= len(l.Children) || from > to {
		return nil
	}
	if extend {
		if existing, ok := l.Children[from].(*TokenList); ok && existing.Kind == kind {
			for i := from + 1; i <= to; i++ {
				existing.Append(l.Children[i])
			}
			l.Children = append(l.Children[:from+1], l.Children[to+1:]...)
			return existing
		}
	}
	group := NewTokenList(kind)
	group.Children = append(group.Children, l.Children[from:to+1]...)
	for _, c := range group.Children {
		c.setParent(group)
	}
	newChildren := make([]Node, 0, len(l.Children)-(to-from))
	newChildren = append(newChildren, l.Children[:from]...)
	newChildren = append(newChildren, group)
	newChildren = append(newChildren, l.Children[to+1:]...)
	l.Children = newChildren
	group.setParent(l)
	return group
}

// GetSublists returns the immediate children that are groups.
func (l *TokenList) GetSublists() []*TokenList {
	var out []*TokenList
	for _, c := range l.Children {
		if g, ok := c.(*TokenList); ok {
			out = append(out, g)
		}
	}
	return out
}

// Flatten yields every leaf Token in the subtree, in order.
func (l *TokenList) Flatten() []*Token {
	var out []*Token
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Token:
			out = append(out, v)
		case *TokenList:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(l)
	return out
}

// Within reports whether l is, or is nested inside, a group of kind.
func (l *TokenList) Within(kind Kind) bool {
	for cur := l; cur != nil; cur = cur.parent {
		if cur.Kind == kind {
			return true
		}
	}
	return false
}

// GetIdentifiers returns immediate children that are identifier-shaped:
// Identifier, IdentifierList, Function groups, or bare Name tokens.
func (l *TokenList) GetIdentifiers() []Node {
	var out []Node
	for _, c := range l.Children {
		switch v := c.(type) {
		case *TokenList:
			if v.Kind == Identifier || v.Kind == IdentifierList || v.Kind == Function {
				out = append(out, v)
			}
		case *Token:
			if v.Typ.Is(token.Name) {
				out = append(out, v)
			}
		}
	}
	return out
}

// GetSections returns the immediate clause-kind children, in order — the
// statement-level "sections" the section splitter iterates (spec.md §4.4).
func (l *TokenList) GetSections() []*TokenList {
	var out []*TokenList
	for _, c := range l.Children {
		if g, ok := c.(*TokenList); ok && (g.Kind.IsClause() || g.Kind.IsStatement()) {
			out = append(out, g)
		}
	}
	return out
}
