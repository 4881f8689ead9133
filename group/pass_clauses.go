package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/internal/groupfault"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// clauseBoundaryKeywords are the keywords that terminate a preceding clause
// when encountered as a sibling at the same nesting level — the start of
// the next clause, join, or set operator.
var clauseBoundaryKeywords = []string{
	"SELECT", "FROM", "WHERE", "GROUP", "ORDER", "HAVING", "LIMIT", "OFFSET",
	"UNION", "INTERSECT", "EXCEPT", "VALUES", "SET", "RETURNING", "WINDOW",
	"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "CROSS", "ON", "FOR", "WITH",
}

// findClauseBoundary walks forward from the last opener token (at index
// from) and returns the index of the last token still belonging to the
// clause body — stopping before a semicolon, before any keyword in
// boundary, or before a sibling that an earlier pass already grouped into
// a clause. Returns from unchanged if the clause has no body.
func findClauseBoundary(tlist *tree.TokenList, from int, boundary []string) int {
	last := from
	idx := from
	for {
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		if next == nil {
			break
		}
		if g, ok := next.(*tree.TokenList); ok && g.Kind.IsClause() {
			break
		}
		if tok, ok := next.(*tree.Token); ok {
			if tok.Match(token.Punctuation, ";") {
				break
			}
			if tok.IsKeyword() {
				word := token.Canonical(tok.Val)
				stop := false
				for _, b := range boundary {
					if word == b {
						stop = true
						break
					}
				}
				if stop {
					break
				}
			}
		}
		last = nidx
		idx = nidx
	}
	return last
}

// groupClauseSimple wraps a fixed multi-word opening keyword sequence (e.g.
// GROUP BY, ORDER BY, PARTITION BY, WHERE, FROM) together with everything up
// to the next clause boundary into a single clause group, recording the
// character length of the opener as OpeningKeywordLength (spec.md §4.3
// passes 24, 26).
func groupClauseSimple(tlist *tree.TokenList, openWords []string, kind tree.Kind, sink diag.Sink, passName string) {
	idx := 0
	for idx < len(tlist.Children) {
		if _, ok := tlist.Children[idx].(*tree.TokenList); ok {
			if g := tlist.Children[idx].(*tree.TokenList); g.Kind != kind {
				groupClauseSimple(g, openWords, kind, sink, passName)
			}
			idx++
			continue
		}
		tok := tlist.Children[idx].(*tree.Token)
		if !tok.IsKeyword() || token.Canonical(tok.Val) != openWords[0] {
			idx++
			continue
		}
		cursor := idx
		matched := true
		for w := 1; w < len(openWords); w++ {
			nidx, next := tree.TokenNext(tlist, cursor, true, true, false)
			nt, ok := next.(*tree.Token)
			if !ok || !nt.IsKeyword() || token.Canonical(nt.Val) != openWords[w] {
				matched = false
				break
			}
			cursor = nidx
		}
		if !matched {
			idx++
			continue
		}
		end := findClauseBoundary(tlist, cursor, clauseBoundaryKeywords)
		if g := wrapSafely(tlist, kind, idx, end, false, sink, passName); g != nil {
			g.OpeningKeywordLength = openerCharLen(openWords)
			idx++
			continue
		}
		idx++
	}
}

// findNextOfKind scans forward from idx (exclusive), skipping whitespace
// and comments like Python's token_next_by, and returns the index of the
// first sibling that is a TokenList of one of kinds, or -1 if none remains.
// It does not stop at intervening tokens/groups of other kinds — it skips
// past them, mirroring token_next_by(i=...)'s unbounded forward search.
func findNextOfKind(tlist *tree.TokenList, idx int, kinds ...tree.Kind) int {
	cursor := idx
	for {
		nidx, next := tree.TokenNext(tlist, cursor, true, true, false)
		if next == nil {
			return -1
		}
		if g, ok := next.(*tree.TokenList); ok {
			for _, k := range kinds {
				if g.Kind == k {
					return nidx
				}
			}
		}
		cursor = nidx
	}
}

// findNextProjectionTarget is findNextOfKind specialized for
// group_select_projection's target set (IdentifierList, Identifier, or a
// bare Wildcard token).
func findNextProjectionTarget(tlist *tree.TokenList, idx int) int {
	cursor := idx
	for {
		nidx, next := tree.TokenNext(tlist, cursor, true, true, false)
		if next == nil {
			return -1
		}
		switch v := next.(type) {
		case *tree.TokenList:
			if v.Kind == tree.IdentifierList || v.Kind == tree.Identifier {
				return nidx
			}
		case *tree.Token:
			if v.Typ.Is(token.Wildcard) {
				return nidx
			}
		}
		cursor = nidx
	}
}

// openerCharLen is the character length of a fixed multi-word opening
// keyword, e.g. ["PARTITION","BY"] -> 12 (spec.md §3 "opening_keyword_length").
func openerCharLen(words []string) int {
	n := 0
	for i, w := range words {
		if i > 0 {
			n++
		}
		n += len(w)
	}
	return n
}

func groupClausePartitionBy(tlist *tree.TokenList, sink diag.Sink) {
	groupClauseSimple(tlist, []string{"PARTITION", "BY"}, tree.ClausePartitionBy, sink, "group_clause_partition_by")
}

func groupClauseOrderBy(tlist *tree.TokenList, sink diag.Sink) {
	groupClauseSimple(tlist, []string{"ORDER", "BY"}, tree.ClauseOrderBy, sink, "group_clause_order_by")
}

func groupClauseGroupBy(tlist *tree.TokenList, sink diag.Sink) {
	groupClauseSimple(tlist, []string{"GROUP", "BY"}, tree.ClauseGroupBy, sink, "group_clause_group_by")
}

// groupValues wraps a VALUES keyword together with the one-or-more
// comma-separated parenthesized tuples that follow it into Values (spec.md
// §4.3 pass 25).
func groupValues(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.Values {
				groupValues(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Match(token.Keyword, "VALUES") {
			idx++
			continue
		}
		end, cursor := idx, idx
		for {
			nidx, next := tree.TokenNext(tlist, cursor, true, true, false)
			ng, ok := next.(*tree.TokenList)
			if !ok || ng.Kind != tree.Parenthesis {
				break
			}
			end, cursor = nidx, nidx
			cidx, comma := tree.TokenNext(tlist, cursor, true, true, false)
			ct, ok := comma.(*tree.Token)
			if !ok || !ct.Match(token.Punctuation, ",") {
				break
			}
			cursor = cidx
		}
		if end == idx {
			idx++
			continue
		}
		if g := wrapSafely(tlist, tree.Values, idx, end, false, sink, "group_values"); g != nil {
			g.OpeningKeywordLength = len("VALUES")
			idx++
			continue
		}
		idx++
	}
}

func groupClauseWhere(tlist *tree.TokenList, sink diag.Sink) {
	groupClauseSimple(tlist, []string{"WHERE"}, tree.ClauseWhere, sink, "group_clause_where")
}

func groupClauseFrom(tlist *tree.TokenList, sink diag.Sink) {
	groupClauseSimple(tlist, []string{"FROM"}, tree.ClauseFrom, sink, "group_clause_from")
}

// groupSelectProjection wraps SELECT [DISTINCT|ALL] together with the next
// IdentifierList/Identifier/Wildcard sibling into SelectProjection — a
// narrow target search, not a boundary scan, so an already-grouped
// ClauseFrom/ClauseWhere sibling further along is never absorbed. Fatal: a
// SELECT with no projection list at all is invalid syntax (spec.md §4.3
// pass 27, §9 fatal-error list).
func groupSelectProjection(tlist *tree.TokenList, sink diag.Sink) error {
	idx := 0
	for idx < len(tlist.Children) {
		if g, ok := tlist.Children[idx].(*tree.TokenList); ok {
			if g.Kind != tree.SelectProjection {
				if err := groupSelectProjection(g, sink); err != nil {
					return err
				}
			}
			idx++
			continue
		}
		tok := tlist.Children[idx].(*tree.Token)
		if !tok.Typ.Is(token.KeywordDML) || token.Canonical(tok.Val) != "SELECT" {
			idx++
			continue
		}
		cursor := idx
		if nidx, next := tree.TokenNext(tlist, cursor, true, true, false); next != nil {
			if nt, ok := next.(*tree.Token); ok && nt.Match(token.Keyword, "DISTINCT", "ALL") {
				cursor = nidx
			}
		}
		end := findNextProjectionTarget(tlist, cursor)
		if end == -1 {
			return groupfault.InvalidSyntax("SELECT", "missing projection list")
		}
		if g := wrapSafely(tlist, tree.SelectProjection, idx, end, false, sink, "group_select_projection"); g != nil {
			g.OpeningKeywordLength = len("SELECT")
			idx++
			continue
		}
		idx++
	}
	return nil
}

// groupClauseWith wraps WITH [RECURSIVE] together with the next
// IdentifierList/Identifier/SubQuery sibling (the CTE body) into ClauseWith
// — a narrow target search, so a following already-grouped SelectProjection
// is never absorbed. Fatal: a WITH with no CTE body is invalid syntax
// (spec.md §4.3 pass 28, §9 fatal-error list).
func groupClauseWith(tlist *tree.TokenList, sink diag.Sink) error {
	idx := 0
	for idx < len(tlist.Children) {
		if g, ok := tlist.Children[idx].(*tree.TokenList); ok {
			if g.Kind != tree.ClauseWith {
				if err := groupClauseWith(g, sink); err != nil {
					return err
				}
			}
			idx++
			continue
		}
		tok := tlist.Children[idx].(*tree.Token)
		if !tok.Match(token.Keyword, "WITH") {
			idx++
			continue
		}
		cursor := idx
		if nidx, next := tree.TokenNext(tlist, cursor, true, true, false); next != nil {
			if nt, ok := next.(*tree.Token); ok && nt.Match(token.Keyword, "RECURSIVE") {
				cursor = nidx
			}
		}
		end := findNextOfKind(tlist, cursor, tree.IdentifierList, tree.Identifier, tree.SubQuery)
		if end == -1 {
			return groupfault.InvalidSyntax("WITH", "missing common table expression body")
		}
		if g := wrapSafely(tlist, tree.ClauseWith, idx, end, false, sink, "group_clause_with"); g != nil {
			g.OpeningKeywordLength = len("WITH")
			idx++
			continue
		}
		idx++
	}
	return nil
}

// groupClauseInsert wraps INSERT [INTO] together with the next Parenthesis
// sibling (the target table's column list) into ClauseInsert — a narrow
// target search, so an already-grouped Values sibling further along is
// never absorbed. Fatal: no Parenthesis follows at all (spec.md §4.3 pass
// 29, §9 fatal-error list).
func groupClauseInsert(tlist *tree.TokenList, sink diag.Sink) error {
	idx := 0
	for idx < len(tlist.Children) {
		if g, ok := tlist.Children[idx].(*tree.TokenList); ok {
			if g.Kind != tree.ClauseInsert {
				if err := groupClauseInsert(g, sink); err != nil {
					return err
				}
			}
			idx++
			continue
		}
		tok := tlist.Children[idx].(*tree.Token)
		if !tok.Typ.Is(token.KeywordDML) || token.Canonical(tok.Val) != "INSERT" {
			idx++
			continue
		}
		cursor, charLen := idx, len("INSERT")
		if nidx, next := tree.TokenNext(tlist, cursor, true, true, false); next != nil {
			if nt, ok := next.(*tree.Token); ok && nt.Match(token.Keyword, "INTO") {
				cursor, charLen = nidx, len("INSERT INTO")
			}
		}
		end := findNextOfKind(tlist, cursor, tree.Parenthesis)
		if end == -1 {
			return groupfault.InvalidSyntax("INSERT", "missing target table")
		}
		if g := wrapSafely(tlist, tree.ClauseInsert, idx, end, false, sink, "group_clause_insert"); g != nil {
			g.OpeningKeywordLength = charLen
			idx++
			continue
		}
		idx++
	}
	return nil
}
