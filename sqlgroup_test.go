package sqlgroup

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

// corpus is a broad sample of SQL across the dialects the teacher repo's
// test suite exercised. Grounded on its compat_test.go query list, adapted
// here to drive the grouping + reindent pipeline instead of the old
// typed-AST parser.
var corpus = []struct {
	name  string
	input string
}{
	{"simple select", "select 1 from t"},
	{"select list", "select 1, 2 from t"},
	{"select star", "select * from t"},
	{"select qualified star", "select a.* from t"},
	{"select distinct", "select distinct 1 from t"},
	{"column alias", "select a as b from t"},
	{"column alias without as", "select a b from t"},
	{"where equals", "select * from t where a = 1"},
	{"where and", "select * from t where a = 1 and b = 2"},
	{"where or", "select * from t where a = 1 or b = 2"},
	{"where in", "select * from t where a in (1, 2, 3)"},
	{"where between", "select * from t where a between 1 and 10"},
	{"where like", "select * from t where a like '%test%'"},
	{"where is null", "select * from t where a is null"},
	{"where is not null", "select * from t where a is not null"},
	{"join", "select * from t1 join t2 on t1.id = t2.id"},
	{"left join", "select * from t1 left join t2 on t1.id = t2.id"},
	{"multiple joins", "select * from t1 join t2 on a = b join t3 on c = d"},
	{"table list", "select 1 from t1, t2"},
	{"union", "select 1 from t union select 2 from t"},
	{"union all", "select 1 from t union all select 2 from t"},
	{"union with order by", "select 1 from t union select 2 from t order by 1"},
	{"subquery in from", "select * from (select 1 from t) as sub"},
	{"subquery in where", "select * from t where id in (select id from t2)"},
	{"correlated subquery", "select * from t where exists (select 1 from t2 where t2.id = t.id)"},
	{"simple cte", "with cte as (select 1 from t) select * from cte"},
	{"multiple ctes", "with cte1 as (select 1 from t), cte2 as (select 2 from t) select * from cte1, cte2"},
	{"recursive cte", "with recursive cte (id, n) as (select 1, 1 from t union all select id+1, n+2 from cte where id < 5) select * from cte"},
	{"group by", "select a, count(*) from t group by a"},
	{"group by multiple", "select a, b, count(*) from t group by a, b"},
	{"having", "select a, count(*) from t group by a having count(*) > 5"},
	{"order by", "select * from t order by a"},
	{"order by multiple", "select * from t order by a, b desc"},
	{"limit", "select * from t limit 10"},
	{"case when", "select case when a = 1 then 'one' end from t"},
	{"case when else", "select case when a = 1 then 'one' else 'other' end from t"},
	{"case value", "select case a when 1 then 'one' when 2 then 'two' end from t"},
	{"count star", "select count(*) from t"},
	{"coalesce", "select coalesce(a, b, c) from t"},
	{"cast", "select cast(a as int) from t"},
	{"concat operator", "select a || b from t"},
	{"add", "select a + b from t"},
	{"complex arithmetic", "select (a + b) * c / d from t"},
	{"not equals", "select * from t where a != b"},
	{"parenthesized expr", "select (a + b) from t"},
	{"nested parentheses", "select ((a + b) * c) from t"},
	{"insert values", "insert into t (a, b) values (1, 2)"},
	{"insert multiple rows", "insert into t (a, b) values (1, 2), (3, 4)"},
	{"update", "update t set a = 1"},
	{"update where", "update t set a = 1 where b = 2"},
	{"row_number partition by", "select row_number() over (partition by type order by id) from t"},
	{"sum over", "select sum(a) over (partition by b) from t"},
	{"line comment", "select 1 from t -- comment"},
	{"block comment", "select /* comment */ 1 from t"},
	{"qualified column", "select t.a from t"},
	{"assignment", "set a = 1"},
}

func TestFormatCorpus(t *testing.T) {
	opts := DefaultOptions()
	for _, tc := range corpus {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Format(tc.input, opts)
			if err != nil {
				t.Fatalf("Format error: %v\ninput: %s", err, tc.input)
			}
			if strings.TrimSpace(out) == "" {
				t.Fatalf("Format returned empty output for input: %s", tc.input)
			}
		})
	}
}

// TestFormatIdempotent is the I-IDEMPOTENT property from spec.md §8:
// formatting already-formatted output must be a no-op.
func TestFormatIdempotent(t *testing.T) {
	opts := DefaultOptions()
	for _, tc := range corpus {
		t.Run(tc.name, func(t *testing.T) {
			once, err := Format(tc.input, opts)
			if err != nil {
				t.Fatalf("first Format error: %v", err)
			}
			twice, err := Format(once, opts)
			if err != nil {
				t.Fatalf("second Format error: %v\nonce: %s", err, once)
			}
			if once != twice {
				t.Errorf("not idempotent for %q:\n%# v\nvs\n%# v", tc.input, pretty.Formatter(once), pretty.Formatter(twice))
			}
		})
	}
}

// TestInsertWithoutColumnListIsFatal: group_clause_insert (spec.md §4.3
// pass 29) requires a Parenthesis after INSERT [INTO] target; an
// insert-select with no column list has none, so it must surface as an
// InvalidSyntax error rather than silently absorbing the SELECT body.
func TestInsertWithoutColumnListIsFatal(t *testing.T) {
	if _, err := Format("insert into t select * from t2", DefaultOptions()); err == nil {
		t.Fatal("expected InvalidSyntax error for INSERT with no column-list parenthesis, got nil")
	}
}

// TestDefaultIdentifierListWraps: the outer IdentifierList branch of
// processIdentifierList (reindent/walker.go) must fire unconditionally once
// id_list_count exceeds the clause's threshold, independent of WrapAfter —
// spec.md:207 Concrete Scenario A requires `select a, b from t` to wrap
// under plain DefaultOptions (WrapAfter left at its zero value).
func TestDefaultIdentifierListWraps(t *testing.T) {
	out, err := Format("select a, b from t", DefaultOptions())
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(out, ",\n") {
		t.Errorf("expected default-config projection list to wrap, got %q", out)
	}
}

// TestFunctionArgumentListWrapsByLastFunc: the Function/Values-nested
// branch of processIdentifierList must adjust its continuation offset by
// the enclosing function name's length (the Python _last_func mechanism),
// only once WrapAfter is configured and the running position crosses it.
func TestFunctionArgumentListWrapsByLastFunc(t *testing.T) {
	opts := DefaultOptions()
	opts.Reindent.WrapAfter = 10
	out, err := Format("select coalesce(aaaaaaaaaa, bbbbbbbbbb, cccccccccc) from t", opts)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(out, "\n") {
		t.Errorf("expected function argument list to wrap past wrap_after, got %q", out)
	}
}

func TestFormatCommaFirst(t *testing.T) {
	opts := DefaultOptions()
	opts.Reindent.CommaFirst = true
	opts.Reindent.WrapAfter = 1
	out, err := Format("select a, b, c from t", opts)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	commaLed := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), ",") {
			commaLed = true
		}
	}
	if !commaLed {
		t.Errorf("expected comma_first wrapping to start a line with a comma, got %q", out)
	}
}
