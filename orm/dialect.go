package orm

import "fmt"

// Dialect abstracts SQL differences between database engines.
type Dialect interface {
	// Placeholder returns the bind parameter placeholder for the given
	// 1-based index. MySQL and SQLite return "?" regardless of index;
	// PostgreSQL returns "$1", "$2", etc.
	Placeholder(index int) string

	// QuoteIdent quotes an identifier (table name, column name) to safely
	// handle SQL reserved words. MySQL uses backticks; PostgreSQL and
	// SQLite use double quotes.
	QuoteIdent(name string) string

	// UseReturning reports whether INSERT should use a RETURNING clause
	// to retrieve the auto-generated primary key (PostgreSQL) rather
	// than relying on LastInsertId (MySQL, SQLite).
	UseReturning() bool

	// ReturningClause returns the RETURNING clause appended to INSERT
	// statements. Returns an empty string for dialects that do not use
	// RETURNING.
	ReturningClause(pk string) string

	// ExtractYear returns the SQL fragment extracting the calendar year
	// from a date/datetime column. SQLite has no EXTRACT and goes through
	// strftime.
	ExtractYear(column string) string

	// LastInsertIDFirst reports whether LastInsertId after a multi-row
	// INSERT returns the first generated key of the batch (MySQL) or the
	// last (SQLite). Not consulted for dialects that use RETURNING.
	LastInsertIDFirst() bool
}

// MySQL is the Dialect for MySQL / MariaDB.
var MySQL Dialect = mysqlDialect{}

// PostgreSQL is the Dialect for PostgreSQL.
var PostgreSQL Dialect = postgresDialect{}

// SQLite is the Dialect for SQLite.
var SQLite Dialect = sqliteDialect{}

type mysqlDialect struct{}

func (mysqlDialect) Placeholder(_ int) string        { return "?" }
func (mysqlDialect) QuoteIdent(name string) string   { return "`" + name + "`" }
func (mysqlDialect) UseReturning() bool              { return false }
func (mysqlDialect) ReturningClause(_ string) string { return "" }
func (mysqlDialect) ExtractYear(column string) string {
	return "EXTRACT(YEAR FROM " + column + ")"
}
func (mysqlDialect) LastInsertIDFirst() bool { return true }

type postgresDialect struct{}

func (postgresDialect) Placeholder(index int) string     { return fmt.Sprintf("$%d", index) }
func (postgresDialect) QuoteIdent(name string) string    { return `"` + name + `"` }
func (postgresDialect) UseReturning() bool               { return true }
func (postgresDialect) ReturningClause(pk string) string { return ` RETURNING "` + pk + `"` }
func (postgresDialect) ExtractYear(column string) string {
	return "EXTRACT(YEAR FROM " + column + ")"
}
func (postgresDialect) LastInsertIDFirst() bool { return true }

type sqliteDialect struct{}

func (sqliteDialect) Placeholder(_ int) string        { return "?" }
func (sqliteDialect) QuoteIdent(name string) string   { return `"` + name + `"` }
func (sqliteDialect) UseReturning() bool              { return false }
func (sqliteDialect) ReturningClause(_ string) string { return "" }
func (sqliteDialect) ExtractYear(column string) string {
	return "CAST(strftime('%Y', " + column + ") AS INTEGER)"
}
func (sqliteDialect) LastInsertIDFirst() bool { return false }

// usesQuestionMark reports whether the dialect binds with ? placeholders,
// in which case placeholder rewriting is a no-op.
func usesQuestionMark(d Dialect) bool {
	return d.Placeholder(1) == "?"
}
