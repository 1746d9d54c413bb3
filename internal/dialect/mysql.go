package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) CreateMetaQuery(table string) string {
	// TEXT cannot be a PK in MySQL, so the registry key is a VARCHAR.
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name VARCHAR(128) PRIMARY KEY,
		columns TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`, d.QuoteIdent(table))
}

func (d *MysqlDialect) CreateSheetQuery(table string, cols []string) string {
	body := "id INT AUTO_INCREMENT PRIMARY KEY"
	if len(cols) > 0 {
		body += ", " + ColumnDefs(cols, d.QuoteIdent, "TEXT")
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), body)
}

func (d *MysqlDialect) AddColumnQuery(table, col string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", d.QuoteIdent(table), d.QuoteIdent(col))
}

func (d *MysqlDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("RENAME TABLE %s TO %s", d.QuoteIdent(oldName), d.QuoteIdent(newName))
}

func (d *MysqlDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) (string, bool) {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), QuoteAll(cols, d.QuoteIdent), vals), false
}

func (d *MysqlDialect) CopyQuery(dst, src string, cols []string) string {
	list := "id"
	if len(cols) > 0 {
		list += ", " + QuoteAll(cols, d.QuoteIdent)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		d.QuoteIdent(dst), list, list, d.QuoteIdent(src))
}

func (d *MysqlDialect) BeforeIdentityCopy(tx *sql.Tx, table string) error {
	// Explicit AUTO_INCREMENT inserts are allowed and bump the counter.
	return nil
}

func (d *MysqlDialect) AfterIdentityCopy(tx *sql.Tx, table string) error {
	return nil
}
