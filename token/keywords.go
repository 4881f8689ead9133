package token

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caser folds keyword text to its canonical uppercase form. Kept as a
// package-level value instead of strings.ToUpper per the normalization
// rule keyword matching relies on (case-insensitive by canonical form).
var caser = cases.Upper(language.Und)

// Canonical returns the canonical (uppercase) form of a keyword value.
func Canonical(value string) string {
	return caser.String(value)
}

// keywordInfo is what the keyword table records for a recognized keyword.
type keywordInfo struct {
	typ Type
}

// keywords maps a keyword's canonical uppercase form to its lexical type.
// Populated in init, mirroring the teacher's keyword-table construction
// (freeeve-machparse/token/keywords.go) but keyed by canonical string
// instead of a flat enum, and carrying a hierarchical Type instead of a
// single constant.
var keywords map[string]keywordInfo

// dmlSet holds the DML-band keywords (Keyword.DML).
var dmlSet = map[string]bool{
	"SELECT": true, "INSERT": true, "UPDATE": true, "DELETE": true,
	"REPLACE": true, "MERGE": true, "TRUNCATE": true,
}

// ddlSet holds the DDL-band keywords; all but TABLE are typed Keyword.DDL
// (see init). group_functions suppresses itself when a statement contains
// both CREATE and TABLE.
var ddlSet = map[string]bool{
	"CREATE": true, "ALTER": true, "DROP": true, "TABLE": true,
}

// orderSet marks Keyword.Order (group_order looks for these).
var orderSet = map[string]bool{"ASC": true, "DESC": true}

// cteSet marks Keyword.CTE.
var cteSet = map[string]bool{"WITH": true, "RECURSIVE": true}

// genericKeywords fill out the fixed SQL-common recognized set (spec.md §1
// Non-goals: not dialect-specific).
var genericKeywords = []string{
	"SELECT", "INSERT", "UPDATE", "DELETE", "REPLACE", "MERGE", "TRUNCATE",
	"CREATE", "ALTER", "DROP", "TABLE", "VIEW", "INDEX", "SCHEMA",
	"FROM", "WHERE", "AND", "OR", "XOR", "NOT", "IN", "LIKE", "ILIKE",
	"SIMILAR", "BETWEEN", "IS", "ISNULL", "NOTNULL", "NULL", "TRUE", "FALSE",
	"UNKNOWN", "AS", "ALL", "DISTINCT", "UNIQUE", "EXISTS",
	"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS", "NATURAL",
	"ON", "USING",
	"GROUP", "BY", "HAVING", "ORDER", "ASC", "DESC", "LIMIT", "OFFSET",
	"UNION", "INTERSECT", "EXCEPT", "ALL",
	"CASE", "WHEN", "THEN", "ELSE", "END",
	"IF", "FOR", "BEGIN", "LOOP",
	"WITH", "RECURSIVE",
	"VALUES", "INTO", "SET", "DEFAULT",
	"OVER", "PARTITION", "FILTER", "WINDOW",
	"CAST", "INTERVAL", "DATE", "TIME", "TIMESTAMP", "DAY", "MONTH", "YEAR",
	"HOUR", "MINUTE", "SECOND",
	"PRIMARY", "FOREIGN", "KEY", "REFERENCES", "CONSTRAINT", "CHECK",
	"RETURNING", "EXPLAIN", "AT", "ZONE",
}

func init() {
	keywords = make(map[string]keywordInfo, len(genericKeywords))
	for _, kw := range genericKeywords {
		typ := Keyword
		switch {
		case dmlSet[kw]:
			typ = KeywordDML
		case ddlSet[kw] && kw != "TABLE":
			typ = KeywordDDL
		case orderSet[kw]:
			typ = KeywordOrder
		case cteSet[kw]:
			typ = KeywordCTE
		}
		keywords[kw] = keywordInfo{typ: typ}
	}
	// TABLE participates in DDL detection (CREATE ... TABLE) without
	// itself carrying Keyword.DDL, matching the teacher's plain keyword.
}

// Lookup returns the lexical type for a keyword-shaped identifier, and
// whether it was recognized as a keyword at all.
func Lookup(value string) (Type, bool) {
	info, ok := keywords[Canonical(value)]
	if !ok {
		return Keyword, false
	}
	return info.typ, true
}

// IsDDLWord reports whether the canonical value participates in
// group_functions' CREATE/TABLE suppression check.
func IsDDLWord(value string) bool {
	v := Canonical(value)
	return v == "CREATE" || v == "TABLE"
}

// builtinFuncs are the Name.Builtin identifiers group_functions (§4.3 pass
// 5) wraps into a Function group when followed by a parenthesis. CAST is
// also in the keyword table, which the lexer consults first, so it lexes
// as a Keyword and is not wrapped.
var builtinFuncs = map[string]bool{
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
	"COALESCE": true, "NULLIF": true, "CAST": true, "EXTRACT": true,
	"SUBSTRING": true, "TRIM": true, "UPPER": true, "LOWER": true,
	"LENGTH": true, "CONCAT": true, "NOW": true, "ROUND": true,
	"ROW_NUMBER": true, "RANK": true, "DENSE_RANK": true, "LAG": true,
	"LEAD": true, "FIRST_VALUE": true, "LAST_VALUE": true, "NTILE": true,
	"ARRAY_AGG": true, "STRING_AGG": true, "JSON_AGG": true,
	"GREATEST": true, "LEAST": true, "ABS": true, "FLOOR": true, "CEIL": true,
}

// IsBuiltin reports whether value names a recognized builtin function.
func IsBuiltin(value string) bool {
	return builtinFuncs[Canonical(value)]
}
