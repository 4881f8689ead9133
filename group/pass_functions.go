package group

import (
	"github.com/freeeve/sqlgroup/internal/diag"
	"github.com/freeeve/sqlgroup/token"
	"github.com/freeeve/sqlgroup/tree"
)

// groupFunctions wraps a Name.Builtin token immediately followed by a
// Parenthesis into a Function group. Suppressed whenever the ambient
// statement contains both CREATE and TABLE, to avoid mis-wrapping
// column-type invocations in DDL (spec.md §4.3 pass 5; §9 design note (ii)
// notes this check is coarse — any statement with both words anywhere is
// suppressed, not just `CREATE TABLE` specifically — and that is carried
// over unchanged as a known limitation, not fixed here).
func groupFunctions(tlist *tree.TokenList, suppress bool, sink diag.Sink) {
	if suppress {
		return
	}
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.Function {
				groupFunctions(g, suppress, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if tok.Typ.Is(token.NameBuiltin) {
			nidx, next := tree.TokenNext(tlist, idx, true, true, false)
			if ng, ok := next.(*tree.TokenList); ok && ng.Kind == tree.Parenthesis {
				if g := wrapSafely(tlist, tree.Function, idx, nidx, false, sink, "group_functions"); g != nil {
					idx++
					continue
				}
			}
		}
		idx++
	}
}

// ContainsCreateAndTable reports whether the statement's flattened tokens
// contain both a CREATE and a TABLE keyword, used by groupFunctions'
// suppression check.
func ContainsCreateAndTable(root *tree.TokenList) bool {
	sawCreate, sawTable := false, false
	for _, t := range root.Flatten() {
		if !t.IsKeyword() {
			continue
		}
		switch token.Canonical(t.Val) {
		case "CREATE":
			sawCreate = true
		case "TABLE":
			sawTable = true
		}
	}
	return sawCreate && sawTable
}

// groupWindowFunction recognizes `OVER (…)` and the optional
// `FILTER (WHERE …) OVER (…)` trailer attached to a prior Function or
// WindowFunction, collapsing the whole span into WindowFunction (spec.md
// §4.3 pass 6).
func groupWindowFunction(tlist *tree.TokenList, sink diag.Sink) {
	idx := 0
	for idx < len(tlist.Children) {
		child := tlist.Children[idx]
		if g, ok := child.(*tree.TokenList); ok {
			if g.Kind != tree.WindowFunction {
				groupWindowFunction(g, sink)
			}
			idx++
			continue
		}
		tok := child.(*tree.Token)
		if !tok.Match(token.Keyword, "OVER") {
			idx++
			continue
		}
		pidx, prev := tree.TokenPrev(tlist, idx, true, true)
		nidx, next := tree.TokenNext(tlist, idx, true, true, false)
		nextGroup, ok := next.(*tree.TokenList)
		if !ok || nextGroup.Kind != tree.Parenthesis {
			idx++
			continue
		}
		prevGroup, ok := prev.(*tree.TokenList)
		if !ok {
			idx++
			continue
		}

		from, to := pidx, nidx
		switch prevGroup.Kind {
		case tree.Function, tree.WindowFunction:
			// Plain `fn(...) OVER (...)`.
		case tree.Parenthesis:
			// `fn(...) FILTER ( WHERE ... ) OVER (...)`: walk back past
			// the FILTER parenthesis and its keyword to the function.
			filterIdx, filterPrev := tree.TokenPrev(tlist, pidx, true, true)
			filterTok, ok := filterPrev.(*tree.Token)
			if !ok || !filterTok.Match(token.Keyword, "FILTER") {
				idx++
				continue
			}
			fnIdx, fnPrev := tree.TokenPrev(tlist, filterIdx, true, true)
			fnGroup, ok := fnPrev.(*tree.TokenList)
			if !ok || !(fnGroup.Kind == tree.Function || fnGroup.Kind == tree.WindowFunction) {
				idx++
				continue
			}
			from = fnIdx
		default:
			idx++
			continue
		}

		if g := wrapSafely(tlist, tree.WindowFunction, from, to, false, sink, "group_window_function"); g != nil {
			idx = from + 1
			continue
		}
		idx++
	}
}
