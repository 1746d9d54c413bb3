package sheet

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Row is one record; values are keyed by sanitized column name and absent
// values read as empty strings.
type Row struct {
	ID     int64
	Values map[string]string
}

// Data is a full snapshot of one spreadsheet, rows ordered by id.
type Data struct {
	Sheet   string
	Columns []string // registry order, id excluded
	Rows    []Row
}

// Header returns the column list the way exports and displays show it:
// a synthetic leading id column followed by the registry order.
func (d *Data) Header() []string {
	return append([]string{"id"}, d.Columns...)
}

// AddRow inserts a row. Keys that do not sanitize to a registered column
// are silently discarded; if nothing survives the row is rejected.
// Returns the new row id.
func (s *Store) AddRow(table string, data map[string]string) (int64, error) {
	columns, err := s.Columns(table)
	if err != nil {
		return 0, err
	}

	registered := make(map[string]bool, len(columns))
	for _, c := range columns {
		registered[c] = true
	}

	clean := make(map[string]string, len(data))
	for k, v := range data {
		if key := Sanitize(k); registered[key] {
			clean[key] = v
		}
	}
	if len(clean) == 0 {
		return 0, ErrEmptyInput
	}

	// Registry order keeps the statement deterministic.
	var cols []string
	var vals []any
	for _, c := range columns {
		if v, ok := clean[c]; ok {
			cols = append(cols, c)
			vals = append(vals, v)
		}
	}

	query, returning := s.d.InsertQuery(table, cols)
	if returning {
		var id int64
		if err := s.db.QueryRow(query, vals...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert row: %w", err)
		}
		return id, nil
	}

	res, err := s.db.Exec(query, vals...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert row: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		// Some drivers (go-ora) cannot report it; one command in flight
		// at a time makes MAX(id) equivalent.
		return s.maxID(table)
	}
	return id, nil
}

func (s *Store) maxID(table string) (int64, error) {
	var id sql.NullInt64
	q := fmt.Sprintf("SELECT MAX(id) FROM %s", s.d.QuoteIdent(table))
	if err := s.db.QueryRow(q).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to read last row id: %w", err)
	}
	return id.Int64, nil
}

// EditCell sets one cell by row id and column name.
func (s *Store) EditCell(table string, rowID int64, column, value string) error {
	columns, err := s.Columns(table)
	if err != nil {
		return err
	}

	col := Sanitize(column)
	if !contains(columns, col) {
		return &NotFoundError{Kind: "column", Name: col}
	}

	q := fmt.Sprintf("UPDATE %s SET %s = %s WHERE id = %s",
		s.d.QuoteIdent(table), s.d.QuoteIdent(col), s.d.Placeholder(0), s.d.Placeholder(1))
	res, err := s.db.Exec(q, value, rowID)
	if err != nil {
		return fmt.Errorf("failed to update cell: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Kind: "row", Name: strconv.FormatInt(rowID, 10)}
	}
	return nil
}

// DeleteRow removes a row by id.
func (s *Store) DeleteRow(table string, rowID int64) error {
	if _, err := s.Columns(table); err != nil {
		return err
	}

	q := fmt.Sprintf("DELETE FROM %s WHERE id = %s",
		s.d.QuoteIdent(table), s.d.Placeholder(0))
	res, err := s.db.Exec(q, rowID)
	if err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Kind: "row", Name: strconv.FormatInt(rowID, 10)}
	}
	return nil
}

// Data returns the whole spreadsheet ordered by id. Column order follows
// the registry, not the physical table, so it is stable across rebuilds.
func (s *Store) Data(table string) (*Data, error) {
	columns, err := s.Columns(table)
	if err != nil {
		return nil, err
	}

	selectList := "id"
	for _, c := range columns {
		selectList += ", " + s.d.QuoteIdent(c)
	}
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectList, s.d.QuoteIdent(table))

	rows, err := s.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", table, err)
	}
	defer rows.Close()

	data := &Data{Sheet: table, Columns: columns}
	for rows.Next() {
		var id int64
		cells := make([]any, len(columns))
		ptrs := make([]any, 0, len(columns)+1)
		ptrs = append(ptrs, &id)
		for i := range cells {
			ptrs = append(ptrs, &cells[i])
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		values := make(map[string]string, len(columns))
		for i, c := range columns {
			values[c] = cellString(cells[i])
		}
		data.Rows = append(data.Rows, Row{ID: id, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return data, nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
