package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) CreateMetaQuery(table string) string {
	// No CREATE TABLE IF NOT EXISTS on SQL Server.
	return fmt.Sprintf(`IF OBJECT_ID(N'%s', N'U') IS NULL
	CREATE TABLE %s (
		name NVARCHAR(128) PRIMARY KEY,
		columns NVARCHAR(MAX),
		created_at DATETIME2 DEFAULT SYSDATETIME()
	)`, strings.ReplaceAll(table, "'", "''"), d.QuoteIdent(table))
}

func (d *MSSQLDialect) CreateSheetQuery(table string, cols []string) string {
	body := "id INT IDENTITY(1,1) PRIMARY KEY"
	if len(cols) > 0 {
		body += ", " + ColumnDefs(cols, d.QuoteIdent, "NVARCHAR(MAX)")
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), body)
}

func (d *MSSQLDialect) AddColumnQuery(table, col string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD %s NVARCHAR(MAX)", d.QuoteIdent(table), d.QuoteIdent(col))
}

func (d *MSSQLDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("EXEC sp_rename N'%s', N'%s'",
		strings.ReplaceAll(oldName, "'", "''"), strings.ReplaceAll(newName, "'", "''"))
}

func (d *MSSQLDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) (string, bool) {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) OUTPUT INSERTED.id VALUES (%s)",
		d.QuoteIdent(table), QuoteAll(cols, d.QuoteIdent), vals), true
}

func (d *MSSQLDialect) CopyQuery(dst, src string, cols []string) string {
	list := "id"
	if len(cols) > 0 {
		list += ", " + QuoteAll(cols, d.QuoteIdent)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		d.QuoteIdent(dst), list, list, d.QuoteIdent(src))
}

// BeforeIdentityCopy enables explicit id inserts on the shadow table;
// without IDENTITY_INSERT the copy would be rejected outright.
func (d *MSSQLDialect) BeforeIdentityCopy(tx *sql.Tx, table string) error {
	_, err := tx.Exec(fmt.Sprintf("SET IDENTITY_INSERT %s ON", d.QuoteIdent(table)))
	return err
}

func (d *MSSQLDialect) AfterIdentityCopy(tx *sql.Tx, table string) error {
	_, err := tx.Exec(fmt.Sprintf("SET IDENTITY_INSERT %s OFF", d.QuoteIdent(table)))
	return err
}
