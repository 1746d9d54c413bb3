package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

// SQLiteDialect is the default. SQLite is also the only backend where the
// whole column-deletion rebuild is a single atomic transaction, since its
// DDL participates in transactions.
type SQLiteDialect struct{}

func (d *SQLiteDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) CreateMetaQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name TEXT PRIMARY KEY,
		columns TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`, d.QuoteIdent(table))
}

func (d *SQLiteDialect) CreateSheetQuery(table string, cols []string) string {
	body := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if len(cols) > 0 {
		body += ", " + ColumnDefs(cols, d.QuoteIdent, "TEXT")
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), body)
}

func (d *SQLiteDialect) AddColumnQuery(table, col string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", d.QuoteIdent(table), d.QuoteIdent(col))
}

func (d *SQLiteDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", d.QuoteIdent(oldName), d.QuoteIdent(newName))
}

func (d *SQLiteDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string) (string, bool) {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), QuoteAll(cols, d.QuoteIdent), vals), false
}

func (d *SQLiteDialect) CopyQuery(dst, src string, cols []string) string {
	list := "id"
	if len(cols) > 0 {
		list += ", " + QuoteAll(cols, d.QuoteIdent)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		d.QuoteIdent(dst), list, list, d.QuoteIdent(src))
}

func (d *SQLiteDialect) BeforeIdentityCopy(tx *sql.Tx, table string) error {
	return nil
}

func (d *SQLiteDialect) AfterIdentityCopy(tx *sql.Tx, table string) error {
	return nil
}
