package sheet_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestExportCSVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	s.ExportsDir = t.TempDir()

	table, _, _ := s.Create("orders", []string{"item", "price"})
	s.AddRow(table, map[string]string{"item": "coffee", "price": "4.50"})
	s.AddRow(table, map[string]string{"item": "tea, green"}) // comma needs quoting
	s.AddRow(table, map[string]string{"price": "2"})

	path, err := s.ExportCSV(table, "")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if filepath.Base(path) != "orders.csv" {
		t.Errorf("default path = %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	data, _ := s.Data(table)
	want := data.Header()
	if len(records) != len(data.Rows)+1 {
		t.Fatalf("records = %d, want %d", len(records), len(data.Rows)+1)
	}
	for i, col := range want {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	for r, row := range data.Rows {
		got := records[r+1]
		for i, col := range data.Columns {
			if got[i+1] != row.Values[col] {
				t.Errorf("row %d col %q = %q, want %q", r, col, got[i+1], row.Values[col])
			}
		}
	}
}

func TestExportCSVExplicitPath(t *testing.T) {
	s := openTestStore(t)
	table, _, _ := s.Create("t", []string{"a"})

	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	got, err := s.ExportCSV(table, path)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export missing: %v", err)
	}
}
