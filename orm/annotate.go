package orm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modelbook/expr"
	"modelbook/scope"
)

// Annotated pairs a loaded row with its named annotation values.
type Annotated[T any] struct {
	Row    T
	Values map[string]float64
}

// Aggregate collapses the matching rows into a single set of named
// aggregate values:
//
//	Books(db).Aggregate(ctx,
//	    expr.As("price__avg", expr.Avg("price")),
//	    expr.As("price__max", expr.Max("price")),
//	)
//
// NULL results (aggregates over an empty set) come back as zero.
func (q *Query[T]) Aggregate(ctx context.Context, exprs ...expr.Aliased) (map[string]float64, error) {
	if len(exprs) == 0 {
		return nil, errors.New("orm: Aggregate requires at least one expression")
	}

	d := q.db.dialect()
	var b strings.Builder
	var args []any
	b.WriteString("SELECT ")
	for i, ae := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		sqlFrag, eArgs := ae.Expr.Build(d)
		b.WriteString(sqlFrag)
		b.WriteString(" AS ")
		b.WriteString(ae.Alias)
		args = append(args, eArgs...)
	}
	b.WriteString(" FROM ")
	b.WriteString(q.qi(q.table))
	for _, j := range q.joins {
		b.WriteByte(' ')
		b.WriteString(j)
	}
	args = append(args, q.appendWhere(&b)...)

	query, args := q.rewrite(b.String(), args)
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, errors.New("orm: aggregate returned no rows")
	}
	dest := make([]any, len(exprs))
	vals := make([]sql.NullFloat64, len(exprs))
	for i := range dest {
		dest[i] = &vals[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}

	result := make(map[string]float64, len(exprs))
	for i, ae := range exprs {
		result[ae.Alias] = vals[i].Float64
	}
	return result, rows.Err() //nolint:wrapcheck // pass through
}

// AllAnnotated executes an annotation query: the aggregate expressions
// registered with Annotate are evaluated per parent row (GROUP BY the
// parent primary key), then the parent rows are batch-loaded and stitched
// to their values in aggregate-query order. OrderBy/Limit/Offset apply to
// the aggregate query, so ordering by an annotation alias works:
//
//	Publishers(db).
//	    LeftJoin("Books").
//	    Annotate("num_books", expr.Count("books.id")).
//	    OrderBy("num_books DESC").
//	    Limit(5).
//	    AllAnnotated(ctx)
func (q *Query[T]) AllAnnotated(ctx context.Context) ([]Annotated[T], error) {
	if len(q.annotations) == 0 {
		return nil, errors.New("orm: AllAnnotated requires at least one Annotate")
	}

	d := q.db.dialect()
	pkRef := q.qi(q.table) + "." + q.qi(q.pk)

	var b strings.Builder
	var args []any
	b.WriteString("SELECT ")
	b.WriteString(pkRef)
	for _, ae := range q.annotations {
		b.WriteString(", ")
		sqlFrag, eArgs := ae.Expr.Build(d)
		b.WriteString(sqlFrag)
		b.WriteString(" AS ")
		b.WriteString(ae.Alias)
		args = append(args, eArgs...)
	}
	b.WriteString(" FROM ")
	b.WriteString(q.qi(q.table))
	for _, j := range q.joins {
		b.WriteByte(' ')
		b.WriteString(j)
	}
	args = append(args, q.appendWhere(&b)...)

	b.WriteString(" GROUP BY ")
	b.WriteString(pkRef)
	if len(q.groupBys) > 0 {
		b.WriteString(", ")
		b.WriteString(strings.Join(q.groupBys, ", "))
	}

	q.appendOrderBy(&b)
	if q.limit != nil {
		fmt.Fprintf(&b, " LIMIT %d", *q.limit)
	}
	if q.offset != nil {
		fmt.Fprintf(&b, " OFFSET %d", *q.offset)
	}

	query, args := q.rewrite(b.String(), args)
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	type annoRow struct {
		pk     any
		values map[string]float64
	}
	var annos []annoRow
	var ids []any
	for rows.Next() {
		var pkVal any
		dest := make([]any, 1+len(q.annotations))
		dest[0] = &pkVal
		vals := make([]sql.NullFloat64, len(q.annotations))
		for i := range vals {
			dest[1+i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err //nolint:wrapcheck // pass through
		}
		values := make(map[string]float64, len(q.annotations))
		for i, ae := range q.annotations {
			values[ae.Alias] = vals[i].Float64
		}
		key := normalizeKey(pkVal)
		annos = append(annos, annoRow{pk: key, values: values})
		ids = append(ids, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	if len(annos) == 0 {
		return nil, nil
	}

	// Batch-load the parent rows, preserving any requested preloads.
	load := NewQuery[T](q.db, q.table, q.columns, q.pk, q.scan, q.colValPairs, q.setPK)
	load.joinDefs = q.joinDefs
	load.preloaders = q.preloaders
	load.preloads = q.preloads
	parents, err := load.Scopes(scope.In(q.pk, ids)).All(ctx)
	if err != nil {
		return nil, err
	}

	byPK := make(map[any]T, len(parents))
	for i := range parents {
		cols, vals := q.colValPairs(&parents[i], true)
		for j, col := range cols {
			if col == q.pk {
				byPK[normalizeKey(vals[j])] = parents[i]
				break
			}
		}
	}

	result := make([]Annotated[T], 0, len(annos))
	for _, a := range annos {
		row, ok := byPK[a.pk]
		if !ok {
			continue
		}
		result = append(result, Annotated[T]{Row: row, Values: a.values})
	}
	return result, nil
}

// Pluck returns a single column of the matching rows, scanned as V.
// The flat single-column projection:
//
//	names, err := orm.Pluck[model.Fruit, string](ctx, Fruits(db), "name")
func Pluck[T, V any](ctx context.Context, q *Query[T], column string) ([]V, error) {
	query, args := q.Select(column).buildSelect()
	query, args = q.rewrite(query, args)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	var result []V
	for rows.Next() {
		var v V
		if err := rows.Scan(&v); err != nil {
			return nil, err //nolint:wrapcheck // pass through
		}
		result = append(result, v)
	}
	return result, rows.Err() //nolint:wrapcheck // pass through
}

// normalizeKey widens scanned primary key values so that driver-returned
// values (int64, []byte) compare equal to model field values (int, string).
func normalizeKey(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case []byte:
		return string(x)
	default:
		return v
	}
}
