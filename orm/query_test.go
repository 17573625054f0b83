package orm_test

import (
	"context"
	"database/sql"
	"testing"

	"modelbook/expr"
	"modelbook/orm"
	"modelbook/scope"
)

type testUser struct {
	ID   int
	Name string
}

var testUserColumns = []string{"id", "name"}

func scanTestUser(_ *sql.Rows) (testUser, error) {
	return testUser{}, nil
}

func testUserColValPairs(u *testUser, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"}, []any{u.ID, u.Name}
	}
	return []string{"name"}, []any{u.Name}
}

func setTestUserPK(u *testUser, id int64) {
	u.ID = int(id)
}

func newTestQuery(tq *orm.TestQuerier) *orm.Query[testUser] {
	return orm.NewQuery[testUser](tq, "users", testUserColumns, "id", scanTestUser, testUserColValPairs, setTestUserPK)
}

// --- SELECT (MySQL) ---

func TestBuildSelectAll(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users`"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildSelectWhere(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Where("name = ?", "alice").All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE name = ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 1 || got.Args[0] != "alice" {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildSelectMultipleWhere(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Where("name = ?", "alice").Where("id > ?", 10).All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE name = ? AND id > ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 2 {
		t.Errorf("Args = %v, want 2 args", got.Args)
	}
}

func TestBuildSelectOrderBy(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.OrderBy("name ASC").All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` ORDER BY name ASC"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildSelectLimitOffset(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Limit(10).Offset(20).All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` LIMIT 10 OFFSET 20"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildSelectCustomColumns(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Select("id").All(context.Background())

	got := tq.LastQuery()
	want := "SELECT id FROM `users`"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildSelectFull(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.
		Where("name = ?", "alice").
		OrderBy("id DESC").
		Limit(5).
		Offset(10).
		All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE name = ? ORDER BY id DESC LIMIT 5 OFFSET 10"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- Filter (expression predicates) ---

func TestBuildSelectFilter(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Filter(expr.StartsWith("name", "ali")).All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE name LIKE ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 1 || got.Args[0] != "ali%" {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildSelectWhereAndFilter(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.
		Where("name = ?", "alice").
		Filter(expr.Gt("id", 10)).
		All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE name = ? AND id > ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 2 || got.Args[0] != "alice" || got.Args[1] != 10 {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildSelectFilterOr(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Filter(expr.Or(
		expr.Eq("name", "alice"),
		expr.Eq("name", "bob"),
	)).All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE (name = ? OR name = ?)"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildSelectFilterYearPostgreSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.PostgreSQL)
	q := newTestQuery(tq)

	_, _ = q.Filter(expr.YearEq("created_at", 2008)).All(context.Background())

	got := tq.LastQuery()
	want := `SELECT "id", "name" FROM "users" WHERE EXTRACT(YEAR FROM created_at) = $1`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 1 || got.Args[0] != 2008 {
		t.Errorf("Args = %v", got.Args)
	}
}

// --- GroupBy ---

func TestBuildSelectGroupBy(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Select("name, COUNT(*)").GroupBy("name").OrderBy("name").All(context.Background())

	got := tq.LastQuery()
	want := "SELECT name, COUNT(*) FROM `users` GROUP BY name ORDER BY name"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- Default ordering ---

func TestDefaultOrder(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)
	q.RegisterDefaultOrder("name")

	_, _ = q.All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` ORDER BY name"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestDefaultOrderOverridden(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)
	q.RegisterDefaultOrder("name")

	_, _ = q.OrderBy("id DESC").All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` ORDER BY id DESC"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- Scopes ---

func TestBuildSelectWithScopes(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Scopes(
		scope.Where("name = ?", "alice"),
		scope.OrderBy("id DESC"),
		scope.Limit(5),
		scope.Offset(10),
	).All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE name = ? ORDER BY id DESC LIMIT 5 OFFSET 10"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildSelectWithFilterScope(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Scopes(
		scope.Filter(expr.In("id", 1, 2, 3)),
		scope.GroupBy("name"),
	).All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` WHERE id IN (?, ?, ?) GROUP BY name"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- Immutability ---

func TestQueryImmutability(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	base := newTestQuery(tq)

	_ = base.Where("name = ?", "alice")
	_ = base.Filter(expr.Gt("id", 1))
	_ = base.OrderBy("id")
	_ = base.GroupBy("name")
	_ = base.Limit(10)
	_ = base.Offset(5)
	_ = base.Annotate("n", expr.Count("id"))

	_, _ = base.All(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users`"
	if got.SQL != want {
		t.Errorf("base query was mutated: SQL = %q", got.SQL)
	}
}

// --- INSERT ---

func TestBuildInsertMySQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	u := testUser{Name: "alice"}
	_ = q.Create(context.Background(), &u)

	got := tq.LastQuery()
	want := "INSERT INTO `users` (`name`) VALUES (?)"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 1 || got.Args[0] != "alice" {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildInsertPostgreSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.PostgreSQL)
	q := newTestQuery(tq)

	u := testUser{Name: "alice"}
	_ = q.Create(context.Background(), &u)

	got := tq.LastQuery()
	want := `INSERT INTO "users" ("name") VALUES ($1) RETURNING "id"`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildInsertSQLite(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.SQLite)
	q := newTestQuery(tq)

	u := testUser{Name: "alice"}
	_ = q.Create(context.Background(), &u)

	got := tq.LastQuery()
	want := `INSERT INTO "users" ("name") VALUES (?)`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- UPSERT ---

func TestBuildUpsertMySQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	u := testUser{ID: 1, Name: "alice"}
	_ = q.Upsert(context.Background(), &u)

	got := tq.LastQuery()
	want := "INSERT INTO `users` (`id`, `name`) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE `name` = VALUES(`name`)"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 2 || got.Args[0] != 1 || got.Args[1] != "alice" {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildUpsertPostgreSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.PostgreSQL)
	q := newTestQuery(tq)

	u := testUser{ID: 1, Name: "alice"}
	_ = q.Upsert(context.Background(), &u)

	got := tq.LastQuery()
	want := `INSERT INTO "users" ("id", "name") VALUES ($1, $2) ` +
		`ON CONFLICT ("id") DO UPDATE SET "name" = EXCLUDED."name" RETURNING "id"`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildUpsertSQLite(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.SQLite)
	q := newTestQuery(tq)

	u := testUser{ID: 1, Name: "alice"}
	_ = q.Upsert(context.Background(), &u)

	got := tq.LastQuery()
	want := `INSERT INTO "users" ("id", "name") VALUES (?, ?) ` +
		`ON CONFLICT ("id") DO UPDATE SET "name" = EXCLUDED."name"`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- UPDATE ---

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	u := testUser{ID: 1, Name: "bob"}
	_ = q.Update(context.Background(), &u)

	got := tq.LastQuery()
	want := "UPDATE `users` SET `name` = ? WHERE `id` = ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 2 || got.Args[0] != "bob" || got.Args[1] != 1 {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildUpdatePostgreSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.PostgreSQL)
	q := newTestQuery(tq)

	u := testUser{ID: 1, Name: "bob"}
	_ = q.Update(context.Background(), &u)

	got := tq.LastQuery()
	want := `UPDATE "users" SET "name" = $1 WHERE "id" = $2`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// testLabel has a caller-supplied natural key and nothing else, like a
// lookup table keyed by name.
type testLabel struct {
	Name string
}

func scanTestLabel(_ *sql.Rows) (testLabel, error) {
	return testLabel{}, nil
}

func testLabelColValPairs(l *testLabel, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"name"}, []any{l.Name}
	}
	return nil, nil
}

func TestUpdateWithOnlyPrimaryKeyReturnsError(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := orm.NewQuery[testLabel](tq, "labels", []string{"name"}, "name", scanTestLabel, testLabelColValPairs, nil)

	l := testLabel{Name: "fresh"}
	if err := q.Update(context.Background(), &l); err == nil {
		t.Fatal("expected error for Update with no non-key columns, got nil")
	}
	if len(tq.Queries) != 0 {
		t.Errorf("expected no query to be issued, got %q", tq.LastQuery().SQL)
	}
}

// --- UpdateAll ---

func TestBuildUpdateAllLiteral(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, err := q.Where("id = ?", 1).UpdateAll(context.Background(), expr.Set("name", "bob"))
	if err != nil {
		t.Fatalf("UpdateAll: %v", err)
	}

	got := tq.LastQuery()
	want := "UPDATE `users` SET `name` = ? WHERE id = ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 2 || got.Args[0] != "bob" || got.Args[1] != 1 {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildUpdateAllExpression(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, err := q.Where("id = ?", 1).
		UpdateAll(context.Background(), expr.Set("id", expr.Add(expr.F("id"), 100)))
	if err != nil {
		t.Fatalf("UpdateAll: %v", err)
	}

	got := tq.LastQuery()
	want := "UPDATE `users` SET `id` = (id + ?) WHERE id = ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 2 || got.Args[0] != 100 || got.Args[1] != 1 {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestUpdateAllWithoutAssignmentsReturnsError(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	if _, err := q.UpdateAll(context.Background()); err == nil {
		t.Fatal("expected error for UpdateAll without assignments, got nil")
	}
}

// --- DELETE ---

func TestBuildDelete(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_ = q.Where("id = ?", 1).Delete(context.Background())

	got := tq.LastQuery()
	want := "DELETE FROM `users` WHERE id = ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildDeleteWithFilter(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	if err := q.Filter(expr.Eq("name", "bob")).Delete(context.Background()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := tq.LastQuery()
	want := "DELETE FROM `users` WHERE name = ?"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestDeleteWithoutWhereReturnsError(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	err := q.Delete(context.Background())
	if err == nil {
		t.Fatal("expected error for Delete without WHERE, got nil")
	}
}

// --- Aggregate / Annotate SQL ---

func TestBuildAggregate(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Aggregate(context.Background(),
		expr.As("id__avg", expr.Avg("id")),
		expr.As("id__max", expr.Max("id")),
	)

	got := tq.LastQuery()
	want := "SELECT AVG(id) AS id__avg, MAX(id) AS id__max FROM `users`"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestBuildAggregateWithCountFilter(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.Aggregate(context.Background(),
		expr.As("bobs", expr.Count("id").Filter(expr.Eq("name", "bob"))),
	)

	got := tq.LastQuery()
	want := "SELECT COUNT(CASE WHEN name = ? THEN id END) AS bobs FROM `users`"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 1 || got.Args[0] != "bob" {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestBuildAllAnnotated(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)
	q.RegisterJoin("Posts", orm.JoinConfig{
		TargetTable: "posts", TargetColumn: "user_id",
		SourceTable: "users", SourceColumn: "id",
	})

	_, _ = q.
		LeftJoin("Posts").
		Annotate("num_posts", expr.Count("posts.id")).
		OrderBy("num_posts DESC").
		Limit(3).
		AllAnnotated(context.Background())

	got := tq.LastQuery()
	want := "SELECT `users`.`id`, COUNT(posts.id) AS num_posts FROM `users`" +
		" LEFT JOIN `posts` ON `posts`.`user_id` = `users`.`id`" +
		" GROUP BY `users`.`id` ORDER BY num_posts DESC LIMIT 3"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

// --- First ---

func TestFirstAddsLimit(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	q := newTestQuery(tq)

	_, _ = q.First(context.Background())

	got := tq.LastQuery()
	want := "SELECT `id`, `name` FROM `users` LIMIT 1"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}
