package expr

import "strings"

// Predicates are expressions that render to boolean SQL conditions. They
// compose with And/Or/Not, so OR-of-conditions queries can be written
// without raw SQL:
//
//	expr.Or(
//	    expr.StartsWith("question_text", "Who"),
//	    expr.StartsWith("question_text", "What"),
//	)

type cmp struct {
	column string
	op     string
	v      Expr
}

func (c cmp) Build(d Dialect) (string, []any) {
	vs, args := c.v.Build(d)
	return c.column + " " + c.op + " " + vs, args
}

// Eq compares a column for equality.
func Eq(column string, v any) Expr { return cmp{column, "=", toExpr(v)} }

// Ne compares a column for inequality.
func Ne(column string, v any) Expr { return cmp{column, "<>", toExpr(v)} }

// Gt compares a column with >.
func Gt(column string, v any) Expr { return cmp{column, ">", toExpr(v)} }

// Gte compares a column with >=.
func Gte(column string, v any) Expr { return cmp{column, ">=", toExpr(v)} }

// Lt compares a column with <.
func Lt(column string, v any) Expr { return cmp{column, "<", toExpr(v)} }

// Lte compares a column with <=.
func Lte(column string, v any) Expr { return cmp{column, "<=", toExpr(v)} }

// Like matches a column against a SQL LIKE pattern.
func Like(column, pattern string) Expr { return cmp{column, "LIKE", value{pattern}} }

// StartsWith matches values beginning with prefix.
func StartsWith(column, prefix string) Expr { return Like(column, prefix+"%") }

// EndsWith matches values ending with suffix.
func EndsWith(column, suffix string) Expr { return Like(column, "%"+suffix) }

// Contains matches values containing s.
func Contains(column, s string) Expr { return Like(column, "%"+s+"%") }

type isNull struct {
	column string
	not    bool
}

func (n isNull) Build(Dialect) (string, []any) {
	if n.not {
		return n.column + " IS NOT NULL", nil
	}
	return n.column + " IS NULL", nil
}

// IsNull matches NULL values.
func IsNull(column string) Expr { return isNull{column: column} }

// NotNull matches non-NULL values.
func NotNull(column string) Expr { return isNull{column: column, not: true} }

type in struct {
	column string
	vals   []any
}

func (i in) Build(Dialect) (string, []any) {
	if len(i.vals) == 0 {
		return "1 = 0", nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(i.vals)), ", ")
	return i.column + " IN (" + placeholders + ")", i.vals
}

// In matches any of the given values. With no values it matches nothing.
func In(column string, vals ...any) Expr { return in{column: column, vals: vals} }

type yearEq struct {
	column string
	year   int
}

func (y yearEq) Build(d Dialect) (string, []any) {
	return d.ExtractYear(y.column) + " = ?", []any{y.year}
}

// YearEq matches date/datetime values falling in the given calendar year.
func YearEq(column string, year int) Expr { return yearEq{column: column, year: year} }

type conj struct {
	op    string
	preds []Expr
}

func (c conj) Build(d Dialect) (string, []any) {
	if len(c.preds) == 0 {
		return "1 = 1", nil
	}
	if len(c.preds) == 1 {
		return c.preds[0].Build(d)
	}
	var b strings.Builder
	var args []any
	b.WriteByte('(')
	for i, p := range c.preds {
		if i > 0 {
			b.WriteString(" " + c.op + " ")
		}
		s, as := p.Build(d)
		b.WriteString(s)
		args = append(args, as...)
	}
	b.WriteByte(')')
	return b.String(), args
}

// And combines predicates with AND.
func And(preds ...Expr) Expr { return conj{op: "AND", preds: preds} }

// Or combines predicates with OR.
func Or(preds ...Expr) Expr { return conj{op: "OR", preds: preds} }

type not struct{ pred Expr }

func (n not) Build(d Dialect) (string, []any) {
	s, args := n.pred.Build(d)
	return "NOT (" + s + ")", args
}

// Not negates a predicate.
func Not(pred Expr) Expr { return not{pred: pred} }
