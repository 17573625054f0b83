package schema_test

import (
	"testing"

	"modelbook/orm"
	"modelbook/schema"
)

func TestCreateSQL(t *testing.T) {
	t.Parallel()

	table := schema.Table{
		Name: "choices",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.Serial},
			{Name: "question_id", Kind: schema.Int},
			{Name: "choice_text", Kind: schema.Varchar, Size: 200},
			{Name: "votes", Kind: schema.Int},
		},
		ForeignKeys: []schema.ForeignKey{
			{Column: "question_id", RefTable: "questions", RefColumn: "id"},
		},
	}

	tests := []struct {
		name    string
		dialect orm.Dialect
		want    string
	}{
		{
			name:    "mysql",
			dialect: orm.MySQL,
			want:    "CREATE TABLE `choices` (`id` INT AUTO_INCREMENT PRIMARY KEY, `question_id` INT NOT NULL, `choice_text` VARCHAR(200) NOT NULL, `votes` INT NOT NULL, FOREIGN KEY (`question_id`) REFERENCES `questions` (`id`) ON DELETE CASCADE)",
		},
		{
			name:    "postgres",
			dialect: orm.PostgreSQL,
			want:    `CREATE TABLE "choices" ("id" SERIAL PRIMARY KEY, "question_id" INTEGER NOT NULL, "choice_text" VARCHAR(200) NOT NULL, "votes" INTEGER NOT NULL, FOREIGN KEY ("question_id") REFERENCES "questions" ("id") ON DELETE CASCADE)`,
		},
		{
			name:    "sqlite",
			dialect: orm.SQLite,
			want:    `CREATE TABLE "choices" ("id" INTEGER PRIMARY KEY AUTOINCREMENT, "question_id" INTEGER NOT NULL, "choice_text" VARCHAR(200) NOT NULL, "votes" INTEGER NOT NULL, FOREIGN KEY ("question_id") REFERENCES "questions" ("id") ON DELETE CASCADE)`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := schema.CreateSQL(table, tt.dialect); got != tt.want {
				t.Errorf("CreateSQL =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCreateSQLNaturalKeyAndNullable(t *testing.T) {
	t.Parallel()

	table := schema.Table{
		Name: "fruits",
		Columns: []schema.Column{
			{Name: "name", Kind: schema.Varchar, Size: 100, PrimaryKey: true},
			{Name: "picked", Kind: schema.Date, Null: true},
		},
	}

	want := `CREATE TABLE "fruits" ("name" VARCHAR(100) PRIMARY KEY, "picked" DATE)`
	if got := schema.CreateSQL(table, orm.SQLite); got != want {
		t.Errorf("CreateSQL = %s, want %s", got, want)
	}
}

func TestCreateSQLUnique(t *testing.T) {
	t.Parallel()

	table := schema.Table{
		Name: "pizza_toppings",
		Columns: []schema.Column{
			{Name: "pizza_id", Kind: schema.Int},
			{Name: "topping_id", Kind: schema.Int},
		},
		Uniques: [][]string{{"pizza_id", "topping_id"}},
	}

	want := `CREATE TABLE "pizza_toppings" ("pizza_id" INTEGER NOT NULL, "topping_id" INTEGER NOT NULL, UNIQUE ("pizza_id", "topping_id"))`
	if got := schema.CreateSQL(table, orm.SQLite); got != want {
		t.Errorf("CreateSQL = %s, want %s", got, want)
	}
}

func TestDropSQL(t *testing.T) {
	t.Parallel()

	got := schema.DropSQL(schema.Table{Name: "oxen"}, orm.MySQL)
	if want := "DROP TABLE IF EXISTS `oxen`"; got != want {
		t.Errorf("DropSQL = %s, want %s", got, want)
	}
}

// Every foreign key must reference a table defined earlier in Tables, or
// Create would fail midway on engines that enforce references at DDL time.
func TestTablesDependencyOrder(t *testing.T) {
	t.Parallel()

	defined := make(map[string]bool, len(schema.Tables))
	for _, table := range schema.Tables {
		for _, fk := range table.ForeignKeys {
			if !defined[fk.RefTable] {
				t.Errorf("table %s references %s before it is defined", table.Name, fk.RefTable)
			}
		}
		defined[table.Name] = true
	}
}
