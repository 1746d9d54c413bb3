package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ExportCSV writes the spreadsheet as header + rows, same column order as
// Data. With an empty path the file goes to <ExportsDir>/<table>.csv.
// Returns the path written.
func (s *Store) ExportCSV(table, path string) (string, error) {
	data, err := s.Data(table)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(s.ExportsDir, table+".csv")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(data.Header()); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, 0, len(data.Columns)+1)
		record = append(record, strconv.FormatInt(row.ID, 10))
		for _, c := range data.Columns {
			record = append(record, row.Values[c])
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", row.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	return path, nil
}
