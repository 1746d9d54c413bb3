package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) CreateMetaQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name TEXT PRIMARY KEY,
		columns TEXT,
		created_at TIMESTAMPTZ DEFAULT now()
	)`, d.QuoteIdent(table))
}

func (d *PostgresDialect) CreateSheetQuery(table string, cols []string) string {
	// BY DEFAULT (not ALWAYS) so the rebuild can insert explicit ids.
	body := "id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
	if len(cols) > 0 {
		body += ", " + ColumnDefs(cols, d.QuoteIdent, "TEXT")
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), body)
}

func (d *PostgresDialect) AddColumnQuery(table, col string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", d.QuoteIdent(table), d.QuoteIdent(col))
}

func (d *PostgresDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", d.QuoteIdent(oldName), d.QuoteIdent(newName))
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) (string, bool) {
	// lib/pq has no LastInsertId; fetch the id via RETURNING.
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		d.QuoteIdent(table), QuoteAll(cols, d.QuoteIdent), vals), true
}

func (d *PostgresDialect) CopyQuery(dst, src string, cols []string) string {
	list := "id"
	if len(cols) > 0 {
		list += ", " + QuoteAll(cols, d.QuoteIdent)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		d.QuoteIdent(dst), list, list, d.QuoteIdent(src))
}

func (d *PostgresDialect) BeforeIdentityCopy(tx *sql.Tx, table string) error {
	return nil
}

// AfterIdentityCopy resyncs the identity sequence past the copied ids so
// the next plain insert does not collide.
func (d *PostgresDialect) AfterIdentityCopy(tx *sql.Tx, table string) error {
	q := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`,
		strings.ReplaceAll(table, "'", "''"), d.QuoteIdent(table))
	_, err := tx.Exec(q)
	return err
}
