// Package schema declares the tables behind the model types and renders
// CREATE TABLE statements per dialect. Referential actions live here, not in
// Go code: every foreign key cascades on delete, so removing a question also
// removes its choices.
package schema

import (
	"context"
	"fmt"
	"strings"

	"modelbook/orm"
)

// ColumnKind is the portable column type, mapped to a concrete SQL type per
// dialect when rendering.
type ColumnKind int

const (
	Serial ColumnKind = iota // auto-increment integer primary key
	Int
	Text
	Varchar // requires Size
	Date
	DateTime
	Float
	Decimal // requires Precision and Scale
)

// Column describes a single table column.
type Column struct {
	Name       string
	Kind       ColumnKind
	Size       int // Varchar length
	Precision  int // Decimal digits
	Scale      int // Decimal fractional digits
	Null       bool
	PrimaryKey bool // natural (non-serial) primary key
}

// ForeignKey declares a reference to another table. All foreign keys cascade
// on delete.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table is a full table definition.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
	Uniques     [][]string
}

// CreateSQL renders the CREATE TABLE statement for t in the given dialect.
func CreateSQL(t Table, d orm.Dialect) string {
	qi := d.QuoteIdent

	defs := make([]string, 0, len(t.Columns)+len(t.ForeignKeys)+len(t.Uniques))
	for _, c := range t.Columns {
		defs = append(defs, columnDef(c, d))
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf(
			"FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE CASCADE",
			qi(fk.Column), qi(fk.RefTable), qi(fk.RefColumn),
		))
	}
	for _, cols := range t.Uniques {
		quoted := make([]string, len(cols))
		for i, c := range cols {
			quoted[i] = qi(c)
		}
		defs = append(defs, fmt.Sprintf("UNIQUE (%s)", strings.Join(quoted, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE %s (%s)", qi(t.Name), strings.Join(defs, ", "))
}

// DropSQL renders the DROP TABLE statement for t.
func DropSQL(t Table, d orm.Dialect) string {
	return "DROP TABLE IF EXISTS " + d.QuoteIdent(t.Name)
}

func columnDef(c Column, d orm.Dialect) string {
	qi := d.QuoteIdent

	if c.Kind == Serial {
		switch d {
		case orm.MySQL:
			return qi(c.Name) + " INT AUTO_INCREMENT PRIMARY KEY"
		case orm.PostgreSQL:
			return qi(c.Name) + " SERIAL PRIMARY KEY"
		default:
			return qi(c.Name) + " INTEGER PRIMARY KEY AUTOINCREMENT"
		}
	}

	def := qi(c.Name) + " " + columnType(c, d)
	if c.PrimaryKey {
		return def + " PRIMARY KEY"
	}
	if !c.Null {
		def += " NOT NULL"
	}
	return def
}

func columnType(c Column, d orm.Dialect) string {
	switch c.Kind {
	case Int:
		if d == orm.MySQL {
			return "INT"
		}
		return "INTEGER"
	case Text:
		return "TEXT"
	case Varchar:
		return fmt.Sprintf("VARCHAR(%d)", c.Size)
	case Date:
		return "DATE"
	case DateTime:
		if d == orm.MySQL {
			return "DATETIME"
		}
		return "TIMESTAMP"
	case Float:
		switch d {
		case orm.MySQL:
			return "DOUBLE"
		case orm.PostgreSQL:
			return "DOUBLE PRECISION"
		default:
			return "REAL"
		}
	case Decimal:
		return fmt.Sprintf("DECIMAL(%d, %d)", c.Precision, c.Scale)
	}
	return "TEXT"
}

// Create creates all tables in dependency order.
func Create(ctx context.Context, db *orm.DB) error {
	d := db.Dialect()
	for _, t := range Tables {
		if _, err := db.ExecContext(ctx, CreateSQL(t, d)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// Drop drops all tables in reverse dependency order.
func Drop(ctx context.Context, db *orm.DB) error {
	d := db.Dialect()
	for i := len(Tables) - 1; i >= 0; i-- {
		t := Tables[i]
		if _, err := db.ExecContext(ctx, DropSQL(t, d)); err != nil {
			return fmt.Errorf("drop table %s: %w", t.Name, err)
		}
	}
	return nil
}
