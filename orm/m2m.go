package orm

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Through holds extra column values written onto the intermediate row of a
// many-to-many relation that goes through a model with its own attributes
// (a membership's join date, an invite reason).
type Through map[string]any

// ManyToMany manages the rows of a join table linking a source to a target
// entity. For plain join tables the intermediate row is just the ID pair;
// for through models, Add and Set accept Through defaults for the extra
// columns.
//
// Add is idempotent per (source, target) pair. Clear and Set delete the
// intermediate rows themselves, which is also how clearing a through
// relation discards the membership attributes.
type ManyToMany[S, T comparable] struct {
	Table     string
	SourceCol string
	TargetCol string
}

// Targets returns the target IDs currently linked to source.
func (m ManyToMany[S, T]) Targets(ctx context.Context, db Querier, source S) ([]T, error) {
	pairs, err := QueryJoinTable[S, T](ctx, db, m.Table, m.SourceCol, m.TargetCol, []S{source})
	if err != nil {
		return nil, err
	}
	return UniqueTargets(pairs), nil
}

// Add links source to each target, skipping pairs that already exist.
// defaults may be nil for join tables without extra columns.
func (m ManyToMany[S, T]) Add(ctx context.Context, db Querier, source S, targets []T, defaults Through) error {
	if len(targets) == 0 {
		return nil
	}

	existing, err := m.Targets(ctx, db, source)
	if err != nil {
		return err
	}
	seen := make(map[T]struct{}, len(existing))
	for _, t := range existing {
		seen[t] = struct{}{}
	}

	cols := []string{m.SourceCol, m.TargetCol}
	var extraVals []any
	for _, k := range sortedKeys(defaults) {
		cols = append(cols, k)
		extraVals = append(extraVals, defaults[k])
	}

	d := db.dialect()
	qi := d.QuoteIdent
	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = qi(c)
		placeholders[i] = "?"
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		qi(m.Table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "),
	)
	query = rewritePlaceholders(d, query)

	for _, target := range targets {
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		args := append([]any{source, target}, extraVals...)
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return err //nolint:wrapcheck // pass through
		}
	}
	return nil
}

// Set makes targets the exact linked set: stale pairs are removed (their
// intermediate rows deleted), missing pairs are added with defaults.
func (m ManyToMany[S, T]) Set(ctx context.Context, db Querier, source S, targets []T, defaults Through) error {
	existing, err := m.Targets(ctx, db, source)
	if err != nil {
		return err
	}

	want := make(map[T]struct{}, len(targets))
	for _, t := range targets {
		want[t] = struct{}{}
	}

	var stale []T
	for _, t := range existing {
		if _, ok := want[t]; !ok {
			stale = append(stale, t)
		}
	}
	if err := m.Remove(ctx, db, source, stale); err != nil {
		return err
	}
	return m.Add(ctx, db, source, targets, defaults)
}

// Remove unlinks the given targets from source.
func (m ManyToMany[S, T]) Remove(ctx context.Context, db Querier, source S, targets []T) error {
	if len(targets) == 0 {
		return nil
	}

	d := db.dialect()
	qi := d.QuoteIdent

	placeholders := make([]string, len(targets))
	args := make([]any, 0, len(targets)+1)
	args = append(args, source)
	for i, t := range targets {
		placeholders[i] = "?"
		args = append(args, t)
	}
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ? AND %s IN (%s)",
		qi(m.Table), qi(m.SourceCol), qi(m.TargetCol), strings.Join(placeholders, ", "),
	)
	query = rewritePlaceholders(d, query)

	_, err := db.ExecContext(ctx, query, args...)
	return err //nolint:wrapcheck // pass through
}

// Clear unlinks everything from source by deleting the intermediate rows.
func (m ManyToMany[S, T]) Clear(ctx context.Context, db Querier, source S) error {
	d := db.dialect()
	qi := d.QuoteIdent

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ?",
		qi(m.Table), qi(m.SourceCol),
	)
	query = rewritePlaceholders(d, query)

	_, err := db.ExecContext(ctx, query, source)
	return err //nolint:wrapcheck // pass through
}

// sortedKeys keeps the generated column order stable.
func sortedKeys(m Through) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
