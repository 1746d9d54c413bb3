package sheet

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sheet-agent/internal/dialect"
)

// metaTable is the registry: one row per spreadsheet, holding the sanitized
// name, the comma-joined ordered column list, and the creation timestamp.
const metaTable = "_sheet_meta"

// Store owns the database handle and the spreadsheet registry. All methods
// take explicit sanitized table names; selection state lives in Session.
type Store struct {
	db *sql.DB
	d  dialect.Dialect

	// ExportsDir is where export_csv writes when no path is given.
	ExportsDir string
}

// Info describes one registered spreadsheet.
type Info struct {
	Name      string
	Columns   []string
	CreatedAt string
}

// Open connects to the database and ensures the registry table exists.
// For the sqlite driver the parent directory of the database file is
// created on demand, so a fresh checkout works without setup.
func Open(driver, dsn string) (*Store, error) {
	if driver == "sqlite" && dsn != "" && !strings.HasPrefix(dsn, ":memory:") {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	s := &Store{db: db, d: dialect.GetDialect(driver), ExportsDir: "exports"}
	if _, err := db.Exec(s.d.CreateMetaQuery(metaTable)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create registry table: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Exists reports whether a sanitized name is registered.
func (s *Store) Exists(table string) (bool, error) {
	q := fmt.Sprintf("SELECT name FROM %s WHERE name = %s",
		s.d.QuoteIdent(metaTable), s.d.Placeholder(0))
	var name string
	err := s.db.QueryRow(q, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query registry: %w", err)
	}
	return true, nil
}

// Columns returns the registered column list for a spreadsheet, excluding
// the id column.
func (s *Store) Columns(table string) ([]string, error) {
	q := fmt.Sprintf("SELECT columns FROM %s WHERE name = %s",
		s.d.QuoteIdent(metaTable), s.d.Placeholder(0))
	var joined sql.NullString
	err := s.db.QueryRow(q, table).Scan(&joined)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Kind: "spreadsheet", Name: table}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	return splitColumns(joined.String), nil
}

// Create registers a new spreadsheet and creates its physical table.
// Returns the sanitized table name and column list.
func (s *Store) Create(name string, columns []string) (string, []string, error) {
	table := Sanitize(name)
	if table == "" {
		return "", nil, ErrEmptyInput
	}

	var cols []string
	for _, c := range SanitizeAll(columns) {
		if c != "" {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return "", nil, ErrEmptyInput
	}

	exists, err := s.Exists(table)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, &ExistsError{Kind: "spreadsheet", Name: table}
	}

	if _, err := s.db.Exec(s.d.CreateSheetQuery(table, cols)); err != nil {
		return "", nil, fmt.Errorf("failed to create table %q: %w", table, err)
	}

	reg := fmt.Sprintf("INSERT INTO %s (name, columns) VALUES (%s, %s)",
		s.d.QuoteIdent(metaTable), s.d.Placeholder(0), s.d.Placeholder(1))
	if _, err := s.db.Exec(reg, table, strings.Join(cols, ",")); err != nil {
		// Keep the registry invariant: no registry row, no physical table.
		s.db.Exec(s.d.DropTableQuery(table))
		return "", nil, fmt.Errorf("failed to register %q: %w", table, err)
	}

	return table, cols, nil
}

// Drop removes the physical table and its registry row.
func (s *Store) Drop(table string) error {
	exists, err := s.Exists(table)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Kind: "spreadsheet", Name: table}
	}

	if _, err := s.db.Exec(s.d.DropTableQuery(table)); err != nil {
		return fmt.Errorf("failed to drop table %q: %w", table, err)
	}
	del := fmt.Sprintf("DELETE FROM %s WHERE name = %s",
		s.d.QuoteIdent(metaTable), s.d.Placeholder(0))
	if _, err := s.db.Exec(del, table); err != nil {
		return fmt.Errorf("failed to deregister %q: %w", table, err)
	}
	return nil
}

// List returns all registered spreadsheets in creation order.
func (s *Store) List() ([]Info, error) {
	q := fmt.Sprintf("SELECT name, columns, created_at FROM %s ORDER BY created_at",
		s.d.QuoteIdent(metaTable))
	rows, err := s.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("failed to list spreadsheets: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var name string
		var joined sql.NullString
		var created any
		if err := rows.Scan(&name, &joined, &created); err != nil {
			return nil, fmt.Errorf("failed to scan registry row: %w", err)
		}
		infos = append(infos, Info{
			Name:      name,
			Columns:   splitColumns(joined.String),
			CreatedAt: timestampString(created),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registry: %w", err)
	}
	return infos, nil
}

func splitColumns(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

// timestampString normalizes whatever the driver hands back for the
// created_at column; sqlite returns strings, most others time.Time.
func timestampString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
