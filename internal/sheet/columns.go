package sheet

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AddColumn appends a column to the spreadsheet and applies defaultValue
// to every existing row. ALTER TABLE ... DEFAULT cannot take a bind
// parameter on most backends, so the default goes in via an UPDATE.
// Returns the sanitized column name.
func (s *Store) AddColumn(table, column, defaultValue string) (string, error) {
	columns, err := s.Columns(table)
	if err != nil {
		return "", err
	}

	col := Sanitize(column)
	if col == "" {
		return "", ErrEmptyInput
	}
	if contains(columns, col) {
		return "", &ExistsError{Kind: "column", Name: col}
	}

	if _, err := s.db.Exec(s.d.AddColumnQuery(table, col)); err != nil {
		return "", fmt.Errorf("failed to add column %q: %w", col, err)
	}

	if defaultValue != "" {
		upd := fmt.Sprintf("UPDATE %s SET %s = %s",
			s.d.QuoteIdent(table), s.d.QuoteIdent(col), s.d.Placeholder(0))
		if _, err := s.db.Exec(upd, defaultValue); err != nil {
			return "", fmt.Errorf("failed to apply default for %q: %w", col, err)
		}
	}

	if err := s.setColumns(table, append(columns, col)); err != nil {
		return "", err
	}
	return col, nil
}

// DeleteColumn removes a column by rebuild-and-swap: create a shadow table
// with the reduced schema, copy the surviving columns with their row ids,
// drop the original and rename the shadow into place. This is a deliberate
// workaround for backends without a dependable in-place column drop; row
// ids are preserved so references users have noted stay valid.
//
// The swap runs inside one transaction. On SQLite that makes it atomic;
// backends whose DDL auto-commits (MySQL, Oracle) get the same sequence
// without the atomicity.
func (s *Store) DeleteColumn(table, column string) error {
	columns, err := s.Columns(table)
	if err != nil {
		return err
	}

	col := Sanitize(column)
	if !contains(columns, col) {
		return &NotFoundError{Kind: "column", Name: col}
	}

	var remaining []string
	for _, c := range columns {
		if c != col {
			remaining = append(remaining, c)
		}
	}

	shadow := fmt.Sprintf("_rebuild_%s_%s", table, uuid.NewString()[:8])

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(s.d.CreateSheetQuery(shadow, remaining)); err != nil {
		return fmt.Errorf("failed to create shadow table: %w", err)
	}
	if err := s.d.BeforeIdentityCopy(tx, shadow); err != nil {
		return fmt.Errorf("failed to prepare identity copy: %w", err)
	}
	if _, err := tx.Exec(s.d.CopyQuery(shadow, table, remaining)); err != nil {
		return fmt.Errorf("failed to copy rows: %w", err)
	}
	if err := s.d.AfterIdentityCopy(tx, shadow); err != nil {
		return fmt.Errorf("failed to finish identity copy: %w", err)
	}
	if _, err := tx.Exec(s.d.DropTableQuery(table)); err != nil {
		return fmt.Errorf("failed to drop original table: %w", err)
	}
	if _, err := tx.Exec(s.d.RenameTableQuery(shadow, table)); err != nil {
		return fmt.Errorf("failed to rename shadow table: %w", err)
	}

	upd := fmt.Sprintf("UPDATE %s SET columns = %s WHERE name = %s",
		s.d.QuoteIdent(metaTable), s.d.Placeholder(0), s.d.Placeholder(1))
	if _, err := tx.Exec(upd, strings.Join(remaining, ","), table); err != nil {
		return fmt.Errorf("failed to update registry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rebuild: %w", err)
	}
	return nil
}

func (s *Store) setColumns(table string, columns []string) error {
	upd := fmt.Sprintf("UPDATE %s SET columns = %s WHERE name = %s",
		s.d.QuoteIdent(metaTable), s.d.Placeholder(0), s.d.Placeholder(1))
	if _, err := s.db.Exec(upd, strings.Join(columns, ","), table); err != nil {
		return fmt.Errorf("failed to update registry: %w", err)
	}
	return nil
}
