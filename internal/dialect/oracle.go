package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

// OracleDialect quotes all identifiers, so the sanitized lowercase names
// stay lowercase instead of being folded to upper case.
type OracleDialect struct{}

func (d *OracleDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) CreateMetaQuery(table string) string {
	// Pre-23c Oracle has no IF NOT EXISTS; swallow ORA-00955 instead.
	ddl := fmt.Sprintf(`CREATE TABLE %s (
		name VARCHAR2(128) PRIMARY KEY,
		columns VARCHAR2(4000),
		created_at TIMESTAMP DEFAULT SYSTIMESTAMP
	)`, d.QuoteIdent(table))
	return fmt.Sprintf(`BEGIN
	EXECUTE IMMEDIATE '%s';
EXCEPTION
	WHEN OTHERS THEN
		IF SQLCODE != -955 THEN RAISE; END IF;
END;`, strings.ReplaceAll(ddl, "'", "''"))
}

func (d *OracleDialect) CreateSheetQuery(table string, cols []string) string {
	// BY DEFAULT ON NULL so the rebuild can insert explicit ids.
	body := "id NUMBER GENERATED BY DEFAULT ON NULL AS IDENTITY PRIMARY KEY"
	if len(cols) > 0 {
		body += ", " + ColumnDefs(cols, d.QuoteIdent, "VARCHAR2(4000)")
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), body)
}

func (d *OracleDialect) AddColumnQuery(table, col string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD %s VARCHAR2(4000)", d.QuoteIdent(table), d.QuoteIdent(col))
}

func (d *OracleDialect) RenameTableQuery(oldName, newName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", d.QuoteIdent(oldName), d.QuoteIdent(newName))
}

func (d *OracleDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE %s", d.QuoteIdent(table))
}

func (d *OracleDialect) InsertQuery(table string, cols []string) (string, bool) {
	// go-ora has no usable LastInsertId; the store falls back to MAX(id),
	// which is sound under the one-command-at-a-time session model.
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), QuoteAll(cols, d.QuoteIdent), vals), false
}

func (d *OracleDialect) CopyQuery(dst, src string, cols []string) string {
	list := "id"
	if len(cols) > 0 {
		list += ", " + QuoteAll(cols, d.QuoteIdent)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		d.QuoteIdent(dst), list, list, d.QuoteIdent(src))
}

func (d *OracleDialect) BeforeIdentityCopy(tx *sql.Tx, table string) error {
	return nil
}

// AfterIdentityCopy restarts the identity sequence above the copied ids.
func (d *OracleDialect) AfterIdentityCopy(tx *sql.Tx, table string) error {
	q := fmt.Sprintf("ALTER TABLE %s MODIFY (id GENERATED BY DEFAULT ON NULL AS IDENTITY (START WITH LIMIT VALUE))",
		d.QuoteIdent(table))
	_, err := tx.Exec(q)
	return err
}
