package expr

// Agg is an aggregate function over a column, optionally restricted to rows
// matching a predicate. Agg implements Expr, so aggregates compose with
// arithmetic:
//
//	expr.Sub(expr.Max("price"), expr.Avg("price"))
type Agg struct {
	fn     string
	column string
	filter Expr
}

// Count counts rows; pass "*" to count all rows, or a column to count
// non-NULL values.
func Count(column string) Agg { return Agg{fn: "COUNT", column: column} }

// Avg averages a numeric column.
func Avg(column string) Agg { return Agg{fn: "AVG", column: column} }

// Max returns the maximum of a column.
func Max(column string) Agg { return Agg{fn: "MAX", column: column} }

// Min returns the minimum of a column.
func Min(column string) Agg { return Agg{fn: "MIN", column: column} }

// Sum totals a numeric column.
func Sum(column string) Agg { return Agg{fn: "SUM", column: column} }

// Filter restricts the aggregate to rows matching pred. Rendered with
// CASE WHEN rather than FILTER, which MySQL does not support.
//
//	expr.Count("book.id").Filter(expr.Gt("book.rating", 5))
func (a Agg) Filter(pred Expr) Agg {
	a.filter = pred
	return a
}

func (a Agg) Build(d Dialect) (string, []any) {
	if a.filter == nil {
		return a.fn + "(" + a.column + ")", nil
	}
	ps, args := a.filter.Build(d)
	operand := a.column
	if a.fn == "COUNT" && a.column == "*" {
		operand = "1"
	}
	return a.fn + "(CASE WHEN " + ps + " THEN " + operand + " END)", args
}
