package group

import "github.com/freeeve/sqlgroup/internal/diag"
import "github.com/freeeve/sqlgroup/tree"

// Pipeline runs the fixed 32-pass grouping pipeline over root in the exact
// order fixed by spec.md §4.3, turning the flat token stream produced by
// the lexer into the hierarchical parse tree consumed by the reindent
// engine (C4). Only group_parenthesis, group_select_projection,
// group_clause_with, and group_clause_insert can return a fatal error; a
// fatal error aborts the remaining passes immediately. Every other pass
// swallows its own internal failures via wrapSafely and always runs to
// completion (spec.md §9).
func Pipeline(root *tree.TokenList, sink diag.Sink) error {
	if sink == nil {
		sink = diag.Noop
	}

	groupComments(root, sink)
	groupBrackets(root, sink)
	if err := groupParenthesis(root, sink); err != nil {
		return err
	}

	groupCase(root, sink)
	groupIf(root, sink)
	groupFor(root, sink)
	groupBegin(root, sink)

	suppress := ContainsCreateAndTable(root)
	groupFunctions(root, suppress, sink)
	groupWindowFunction(root, sink)

	groupPeriod(root, sink)
	groupArrays(root, sink)
	groupIdentifier(root, sink)
	groupSignedIdentifier(root, sink)
	groupOrder(root, sink)
	groupTypecasts(root, sink)
	groupTzcasts(root, sink)
	groupTypedLiteral(root, sink)

	groupOperator(root, sink)
	groupComparison(root, sink)

	groupAs(root, sink)
	groupSubQuery(root, sink)
	groupAliased(root, sink)

	groupAssignment(root, sink)
	groupConditionsList(root, sink)
	alignComments(root, sink)
	groupIdentifierList(root, sink)

	groupClausePartitionBy(root, sink)
	groupClauseOrderBy(root, sink)
	groupClauseGroupBy(root, sink)
	groupValues(root, sink)
	groupClauseWhere(root, sink)
	groupClauseFrom(root, sink)

	if err := groupSelectProjection(root, sink); err != nil {
		return err
	}
	if err := groupClauseWith(root, sink); err != nil {
		return err
	}
	if err := groupClauseInsert(root, sink); err != nil {
		return err
	}

	groupStatementSelect(root, sink)
	groupStatementUnion(root, sink)
	groupStatementInsert(root, sink)

	return nil
}
