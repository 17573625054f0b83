// Package expr provides SQL expression trees that push computation into the
// database engine: column references with arithmetic, function calls,
// aggregates, and composable predicates.
//
// Expressions render to a SQL fragment plus bind arguments using ?
// placeholders; the query builder rewrites placeholders per dialect.
package expr

// Dialect is the subset of SQL dialect behavior expressions need at render
// time. This interface lives here so that expr does not import the query
// builder package.
type Dialect interface {
	// ExtractYear returns the SQL fragment extracting the calendar year
	// from the given date/datetime column.
	ExtractYear(column string) string
}

// Expr is a SQL fragment with bind arguments.
// Implementations are immutable values, safe to reuse across queries.
type Expr interface {
	Build(d Dialect) (sql string, args []any)
}

type column string

// F references a column by name, so that arithmetic and updates operate on
// the stored value without loading it into the application first.
//
//	expr.Set("votes", expr.Add(expr.F("votes"), 1))
func F(name string) Expr { return column(name) }

func (c column) Build(Dialect) (string, []any) { return string(c), nil }

type value struct{ v any }

// Value wraps a literal as a bind argument.
func Value(v any) Expr { return value{v} }

func (v value) Build(Dialect) (string, []any) { return "?", []any{v.v} }

// toExpr lifts plain Go values into Value; Expr values pass through.
func toExpr(v any) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	return value{v}
}

type binary struct {
	op          string
	left, right Expr
}

func (b binary) Build(d Dialect) (string, []any) {
	ls, largs := b.left.Build(d)
	rs, rargs := b.right.Build(d)
	return "(" + ls + " " + b.op + " " + rs + ")", append(largs, rargs...)
}

// Add returns l + r. Operands may be Expr values or literals.
func Add(l, r any) Expr { return binary{"+", toExpr(l), toExpr(r)} }

// Sub returns l - r.
func Sub(l, r any) Expr { return binary{"-", toExpr(l), toExpr(r)} }

// Mul returns l * r.
func Mul(l, r any) Expr { return binary{"*", toExpr(l), toExpr(r)} }

// Div returns l / r.
func Div(l, r any) Expr { return binary{"/", toExpr(l), toExpr(r)} }

type fn struct {
	name string
	args []Expr
}

// Func wraps a database function call.
//
//	expr.Func("LOWER", expr.F("name"))
//	expr.Func("COALESCE", expr.F("medal"), "none")
func Func(name string, args ...any) Expr {
	exprs := make([]Expr, len(args))
	for i, a := range args {
		exprs[i] = toExpr(a)
	}
	return fn{name: name, args: exprs}
}

func (f fn) Build(d Dialect) (string, []any) {
	var args []any
	sql := f.name + "("
	for i, a := range f.args {
		if i > 0 {
			sql += ", "
		}
		s, as := a.Build(d)
		sql += s
		args = append(args, as...)
	}
	return sql + ")", args
}

// Aliased pairs an expression with a result column name, for use with
// aggregate and annotation terminals.
type Aliased struct {
	Alias string
	Expr  Expr
}

// As names an expression result.
//
//	expr.As("price__avg", expr.Avg("price"))
func As(alias string, e Expr) Aliased { return Aliased{Alias: alias, Expr: e} }

// Assignment is a SET clause entry for expression updates.
type Assignment struct {
	Column string
	Expr   Expr
}

// Set assigns a column from a literal or an expression.
//
//	expr.Set("headline", "Everything is the same")
//	expr.Set("stories_filed", expr.Add(expr.F("stories_filed"), 1))
func Set(col string, v any) Assignment { return Assignment{Column: col, Expr: toExpr(v)} }
