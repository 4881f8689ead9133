// Package token defines the hierarchical lexical type tags attached to
// every token produced by the lexer and consumed by the grouping engine.
package token

import "strings"

// Type is a dotted lexical tag, e.g. "Keyword.DML". Dots mark subtype
// boundaries: "Keyword.DML" is a "Keyword", but "Keyword" is not a
// "Keyword.DML".
type Type string

// Root categories and the subtypes the grouping passes match on.
const (
	Keyword           Type = "Keyword"
	KeywordDML        Type = "Keyword.DML"
	KeywordDDL        Type = "Keyword.DDL"
	KeywordOrder      Type = "Keyword.Order"
	KeywordCTE        Type = "Keyword.CTE"
	KeywordTZCast     Type = "Keyword.TZCast"
	KeywordTypedLit   Type = "Keyword.TypedLiteral"
	Name              Type = "Name"
	NamePlaceholder   Type = "Name.Placeholder"
	NameBuiltin       Type = "Name.Builtin"
	Number            Type = "Number"
	NumberInteger     Type = "Number.Integer"
	NumberFloat       Type = "Number.Float"
	String            Type = "String"
	StringSingle      Type = "String.Single"
	StringSymbol      Type = "String.Symbol"
	Punctuation       Type = "Punctuation"
	Operator          Type = "Operator"
	OperatorComparison Type = "Operator.Comparison"
	Wildcard          Type = "Wildcard"
	Whitespace        Type = "Whitespace"
	WhitespaceNewline Type = "Whitespace.Newline"
	Comment           Type = "Comment"
	Assignment        Type = "Assignment"
	CTE               Type = "CTE"
	Error             Type = "Error"
)

// Is reports whether t is the same type as, or a dotted subtype of, parent.
func (t Type) Is(parent Type) bool {
	if t == parent {
		return true
	}
	return strings.HasPrefix(string(t), string(parent)+".")
}

// InAny reports whether t.Is(p) holds for any p in types.
func (t Type) InAny(types ...Type) bool {
	for _, p := range types {
		if t.Is(p) {
			return true
		}
	}
	return false
}
