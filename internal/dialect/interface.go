package dialect

import "database/sql"

// Dialect abstracts database-specific SQL for the sheet store.
type Dialect interface {
	// Syntax
	QuoteIdent(name string) string
	Placeholder(index int) string // Returns ?, $1, :1, @p1, ...

	// DDL
	CreateMetaQuery(table string) string
	CreateSheetQuery(table string, cols []string) string
	AddColumnQuery(table, col string) string
	RenameTableQuery(oldName, newName string) string
	DropTableQuery(table string) string

	// DML. When returning is true the statement yields the new row id as
	// a single-row result; otherwise the driver's LastInsertId is used.
	InsertQuery(table string, cols []string) (query string, returning bool)

	// Rebuild support: copying rows with explicit identity values into a
	// freshly created shadow table. BeforeIdentityCopy/AfterIdentityCopy
	// run against the destination table (IDENTITY_INSERT on SQL Server,
	// sequence resync on Postgres/Oracle).
	CopyQuery(dst, src string, cols []string) string
	BeforeIdentityCopy(tx *sql.Tx, table string) error
	AfterIdentityCopy(tx *sql.Tx, table string) error
}
