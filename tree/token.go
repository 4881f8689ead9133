package tree

import "github.com/freeeve/sqlgroup/token"

// Node is satisfied by *Token (a leaf) and *TokenList (a group). It is the
// generic element of a TokenList's child sequence.
type Node interface {
	Parent() *TokenList
	setParent(*TokenList)
	// Value returns the token's source text, or the in-order concatenation
	// of a group's descendants' values.
	Value() string
}

// Token is a single lexical unit: a type tag and its verbatim source text.
type Token struct {
	Typ    token.Type
	Val    string
	parent *TokenList
}

// NewToken creates a detached token (no parent yet, per spec.md §6: tokens
// arrive from the lexer with no parent).
func NewToken(typ token.Type, val string) *Token {
	return &Token{Typ: typ, Val: val}
}

func (t *Token) Parent() *TokenList   { return t.parent }
func (t *Token) setParent(p *TokenList) { t.parent = p }
func (t *Token) Value() string        { return t.Val }

// Match reports whether t satisfies (lexType, values...). An empty values
// set matches on lexical type alone. Values are compared against the token's
// canonical uppercase form for Keyword-typed tokens (case-insensitive
// normalization, spec.md §9), and verbatim otherwise.
func (t *Token) Match(lexType token.Type, values ...string) bool {
	if !t.Typ.Is(lexType) {
		return false
	}
	if len(values) == 0 {
		return true
	}
	cmp := t.Val
	if t.Typ.Is(token.Keyword) {
		cmp = token.Canonical(t.Val)
	}
	for _, v := range values {
		if cmp == v {
			return true
		}
	}
	return false
}

// IsWhitespace reports whether t is a Whitespace or Whitespace.Newline token.
func (t *Token) IsWhitespace() bool { return t.Typ.Is(token.Whitespace) }

// IsKeyword reports whether t carries any Keyword-rooted type.
func (t *Token) IsKeyword() bool { return t.Typ.Is(token.Keyword) }

// IsComment reports whether t is a Comment token.
func (t *Token) IsComment() bool { return t.Typ.Is(token.Comment) }
