package group

import (
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// isNameLike reports whether n can anchor or extend an Identifier: a bare
// name, builtin-name, placeholder, quoted-symbol or number token, or an
// already-grouped Identifier/Function/SignedIdentifier/WindowFunction.
func isNameLike(n tree.Node) bool {
	switch v := n.(type) {
	case *tree.Token:
		return v.Typ.InAny(token.Name, token.NameBuiltin, token.NamePlaceholder, token.StringSymbol, token.Number)
	case *tree.TokenList:
		switch v.Kind {
		case tree.Identifier, tree.Function, tree.SignedIdentifier, tree.WindowFunction:
			return true
		}
	}
	return false
}

// isOperandLike reports whether n can serve as an operand to a comparison
// (spec.md §4.3 pass 16; conditions-list junctions use isConditionOperand
// instead): a literal,
// name-like node, Parenthesis, Function, Operation, TypedLiteral, or the
// keyword NULL. group_operator (pass 15) has one additional exception over
// this — see isOperatorOperandLike.
func isOperandLike(n tree.Node) bool {
	if isNameLike(n) {
		return true
	}
	switch v := n.(type) {
	case *tree.Token:
		if v.Typ.InAny(token.String, token.Number) {
			return true
		}
		return v.Match(token.Keyword, "NULL")
	case *tree.TokenList:
		switch v.Kind {
		case tree.Parenthesis, tree.Operation, tree.TypedLiteral:
			return true
		}
	}
	return false
}

// isOperatorOperandLike is isOperandLike plus group_operator's own keyword
// exception: CURRENT_DATE/CURRENT_TIME/CURRENT_TIMESTAMP are valid operands
// to an arithmetic/wildcard operator but not to a comparison
// (grouping.py's group_operator.valid vs. group_comparison.valid).
func isOperatorOperandLike(n tree.Node) bool {
	if isOperandLike(n) {
		return true
	}
	t, ok := n.(*tree.Token)
	return ok && t.Match(token.Keyword, "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP")
}

// isDMLorDDL reports whether n is a DML/DDL/CTE-typed keyword token, used
// by group_as's valid_next check.
func isDMLorDDL(n tree.Node) bool {
	t, ok := n.(*tree.Token)
	if !ok {
		return false
	}
	return t.Typ.InAny(token.KeywordDML, token.KeywordDDL, token.KeywordCTE)
}

// isNonSubqueryParen reports whether n is a Parenthesis group that is not
// flagged IsSubQuery.
func isNonSubqueryParen(n tree.Node) bool {
	g, ok := n.(*tree.TokenList)
	return ok && g.Kind == tree.Parenthesis && !g.IsSubQuery
}
