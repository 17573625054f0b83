package expr_test

import (
	"reflect"
	"testing"

	"modelbook/expr"
)

// testDialect extracts years the MySQL/PostgreSQL way.
type testDialect struct{}

func (testDialect) ExtractYear(column string) string {
	return "EXTRACT(YEAR FROM " + column + ")"
}

func build(t *testing.T, e expr.Expr) (string, []any) {
	t.Helper()
	return e.Build(testDialect{})
}

func TestF(t *testing.T) {
	t.Parallel()

	sql, args := build(t, expr.F("votes"))
	if sql != "votes" {
		t.Errorf("SQL = %q, want %q", sql, "votes")
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		e        expr.Expr
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "increment",
			e:        expr.Add(expr.F("votes"), 1),
			wantSQL:  "(votes + ?)",
			wantArgs: []any{1},
		},
		{
			name:     "aggregate difference",
			e:        expr.Sub(expr.Max("price"), expr.Avg("price")),
			wantSQL:  "(MAX(price) - AVG(price))",
			wantArgs: nil,
		},
		{
			name:     "nested",
			e:        expr.Mul(expr.Add(expr.F("pages"), 10), 2),
			wantSQL:  "((pages + ?) * ?)",
			wantArgs: []any{10, 2},
		},
		{
			name:     "division",
			e:        expr.Div(expr.F("votes"), expr.F("rating")),
			wantSQL:  "(votes / rating)",
			wantArgs: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args := build(t, tt.e)
			if sql != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	sql, args := build(t, expr.Func("LOWER", expr.F("name")))
	if sql != "LOWER(name)" {
		t.Errorf("SQL = %q, want %q", sql, "LOWER(name)")
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}

	sql, args = build(t, expr.Func("COALESCE", expr.F("medal"), "none"))
	if sql != "COALESCE(medal, ?)" {
		t.Errorf("SQL = %q, want %q", sql, "COALESCE(medal, ?)")
	}
	if !reflect.DeepEqual(args, []any{"none"}) {
		t.Errorf("args = %v, want [none]", args)
	}
}

func TestAggregates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		e       expr.Expr
		wantSQL string
	}{
		{"count star", expr.Count("*"), "COUNT(*)"},
		{"count column", expr.Count("book.id"), "COUNT(book.id)"},
		{"avg", expr.Avg("price"), "AVG(price)"},
		{"max", expr.Max("price"), "MAX(price)"},
		{"min", expr.Min("pages"), "MIN(pages)"},
		{"sum", expr.Sum("votes"), "SUM(votes)"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, _ := build(t, tt.e)
			if sql != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", sql, tt.wantSQL)
			}
		})
	}
}

func TestCountFilter(t *testing.T) {
	t.Parallel()

	sql, args := build(t, expr.Count("books.id").Filter(expr.Gt("books.rating", 5)))
	want := "COUNT(CASE WHEN books.rating > ? THEN books.id END)"
	if sql != want {
		t.Errorf("SQL = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{5}) {
		t.Errorf("args = %v, want [5]", args)
	}

	sql, _ = build(t, expr.Count("*").Filter(expr.Lte("books.rating", 5)))
	want = "COUNT(CASE WHEN books.rating <= ? THEN 1 END)"
	if sql != want {
		t.Errorf("SQL = %q, want %q", sql, want)
	}
}

func TestComparisons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		e        expr.Expr
		wantSQL  string
		wantArgs []any
	}{
		{"eq", expr.Eq("name", "Beatles Blog"), "name = ?", []any{"Beatles Blog"}},
		{"ne", expr.Ne("rating", 5), "rating <> ?", []any{5}},
		{"gt", expr.Gt("age", 30), "age > ?", []any{30}},
		{"gte", expr.Gte("pages", 100), "pages >= ?", []any{100}},
		{"lt", expr.Lt("votes", 10), "votes < ?", []any{10}},
		{"lte", expr.Lte("rating", 3.5), "rating <= ?", []any{3.5}},
		{"like", expr.Like("headline", "%bill%"), "headline LIKE ?", []any{"%bill%"}},
		{"starts with", expr.StartsWith("question_text", "What"), "question_text LIKE ?", []any{"What%"}},
		{"ends with", expr.EndsWith("email", "@example.org"), "email LIKE ?", []any{"%@example.org"}},
		{"contains", expr.Contains("body_text", "Lennon"), "body_text LIKE ?", []any{"%Lennon%"}},
		{"is null", expr.IsNull("birth_date"), "birth_date IS NULL", nil},
		{"not null", expr.NotNull("birth_date"), "birth_date IS NOT NULL", nil},
		{"in", expr.In("id", 1, 2, 3), "id IN (?, ?, ?)", []any{1, 2, 3}},
		{"in empty", expr.In("id"), "1 = 0", nil},
		{"year", expr.YearEq("pub_date", 2022), "EXTRACT(YEAR FROM pub_date) = ?", []any{2022}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args := build(t, tt.e)
			if sql != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	who := expr.StartsWith("question_text", "Who")
	what := expr.StartsWith("question_text", "What")

	sql, args := build(t, expr.Or(who, what))
	want := "(question_text LIKE ? OR question_text LIKE ?)"
	if sql != want {
		t.Errorf("SQL = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"Who%", "What%"}) {
		t.Errorf("args = %v", args)
	}

	sql, _ = build(t, expr.And(expr.Gt("rating", 3), expr.Or(who, what)))
	want = "(rating > ? AND (question_text LIKE ? OR question_text LIKE ?))"
	if sql != want {
		t.Errorf("SQL = %q, want %q", sql, want)
	}

	sql, _ = build(t, expr.Not(who))
	want = "NOT (question_text LIKE ?)"
	if sql != want {
		t.Errorf("SQL = %q, want %q", sql, want)
	}

	// Single-element conjunctions collapse to the inner predicate.
	sql, _ = build(t, expr.And(who))
	if sql != "question_text LIKE ?" {
		t.Errorf("SQL = %q", sql)
	}

	// Empty conjunctions match everything.
	sql, _ = build(t, expr.And())
	if sql != "1 = 1" {
		t.Errorf("SQL = %q, want %q", sql, "1 = 1")
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	a := expr.Set("headline", "Everything is the same")
	sql, args := a.Expr.Build(testDialect{})
	if a.Column != "headline" || sql != "?" {
		t.Errorf("Set literal = %q %q", a.Column, sql)
	}
	if !reflect.DeepEqual(args, []any{"Everything is the same"}) {
		t.Errorf("args = %v", args)
	}

	a = expr.Set("votes", expr.Add(expr.F("votes"), 1))
	sql, args = a.Expr.Build(testDialect{})
	if sql != "(votes + ?)" {
		t.Errorf("Set expr = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{1}) {
		t.Errorf("args = %v", args)
	}
}
