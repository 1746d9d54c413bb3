package sheet_test

import (
	"errors"
	"path/filepath"
	"testing"

	"sheet-agent/internal/sheet"

	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *sheet.Store {
	t.Helper()
	s, err := sheet.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndDuplicate(t *testing.T) {
	s := openTestStore(t)

	table, cols, err := s.Create("My Expenses!", []string{"Item", "Amount ($)"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if table != "my_expenses_" {
		t.Errorf("table = %q, want my_expenses_", table)
	}
	if len(cols) != 2 || cols[0] != "item" || cols[1] != "amount____" {
		t.Errorf("cols = %v", cols)
	}

	// A different display name colliding on the same sanitized form still
	// counts as a duplicate; the error names the sanitized form.
	_, _, err = s.Create("My Expenses?", []string{"a"})
	var ex *sheet.ExistsError
	if !errors.As(err, &ex) {
		t.Fatalf("expected ExistsError, got %v", err)
	}
	if ex.Name != "my_expenses_" {
		t.Errorf("duplicate error names %q, want my_expenses_", ex.Name)
	}
}

func TestCreateEmptyInput(t *testing.T) {
	s := openTestStore(t)

	if _, _, err := s.Create("", []string{"a"}); !errors.Is(err, sheet.ErrEmptyInput) {
		t.Errorf("empty name: got %v", err)
	}
	if _, _, err := s.Create("ok", nil); !errors.Is(err, sheet.ErrEmptyInput) {
		t.Errorf("no columns: got %v", err)
	}
}

func TestAddRowFiltersUnknownKeys(t *testing.T) {
	s := openTestStore(t)
	table, _, err := s.Create("t", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	id, err := s.AddRow(table, map[string]string{"A": "1", "bogus": "x", "b": "2"})
	if err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if id != 1 {
		t.Errorf("first row id = %d, want 1", id)
	}

	if _, err := s.AddRow(table, map[string]string{"nope": "x"}); !errors.Is(err, sheet.ErrEmptyInput) {
		t.Errorf("all-unknown keys: got %v", err)
	}

	data, err := s.Data(table)
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if len(data.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(data.Rows))
	}
	if data.Rows[0].Values["a"] != "1" || data.Rows[0].Values["b"] != "2" {
		t.Errorf("row values = %v", data.Rows[0].Values)
	}
}

func TestEditCell(t *testing.T) {
	s := openTestStore(t)
	table, _, _ := s.Create("t", []string{"a"})
	s.AddRow(table, map[string]string{"a": "old"})

	if err := s.EditCell(table, 1, "A", "new"); err != nil {
		t.Fatalf("EditCell: %v", err)
	}
	data, _ := s.Data(table)
	if data.Rows[0].Values["a"] != "new" {
		t.Errorf("cell = %q, want new", data.Rows[0].Values["a"])
	}

	var nf *sheet.NotFoundError
	if err := s.EditCell(table, 99, "a", "x"); !errors.As(err, &nf) || nf.Kind != "row" {
		t.Errorf("missing row: got %v", err)
	}
	if err := s.EditCell(table, 1, "zzz", "x"); !errors.As(err, &nf) || nf.Kind != "column" {
		t.Errorf("missing column: got %v", err)
	}

	// A failed edit must not change the row count.
	data, _ = s.Data(table)
	if len(data.Rows) != 1 {
		t.Errorf("rows = %d after failed edits, want 1", len(data.Rows))
	}
}

func TestDeleteRow(t *testing.T) {
	s := openTestStore(t)
	table, _, _ := s.Create("t", []string{"a"})
	s.AddRow(table, map[string]string{"a": "1"})
	s.AddRow(table, map[string]string{"a": "2"})

	if err := s.DeleteRow(table, 1); err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}
	var nf *sheet.NotFoundError
	if err := s.DeleteRow(table, 1); !errors.As(err, &nf) {
		t.Errorf("deleting twice: got %v", err)
	}

	data, _ := s.Data(table)
	if len(data.Rows) != 1 || data.Rows[0].ID != 2 {
		t.Errorf("surviving rows = %+v", data.Rows)
	}
}

func TestAddColumnDefault(t *testing.T) {
	s := openTestStore(t)
	table, _, _ := s.Create("t", []string{"a"})
	s.AddRow(table, map[string]string{"a": "1"})
	s.AddRow(table, map[string]string{"a": "2"})

	col, err := s.AddColumn(table, "Status!", "open")
	if err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if col != "status_" {
		t.Errorf("col = %q", col)
	}

	data, _ := s.Data(table)
	for _, row := range data.Rows {
		if row.Values["status_"] != "open" {
			t.Errorf("row %d default = %q, want open", row.ID, row.Values["status_"])
		}
	}

	var ex *sheet.ExistsError
	if _, err := s.AddColumn(table, "status ", "x"); !errors.As(err, &ex) {
		t.Errorf("duplicate column: got %v", err)
	}
}

func TestDeleteColumnRebuild(t *testing.T) {
	s := openTestStore(t)
	table, _, _ := s.Create("t", []string{"a", "b", "c"})
	s.AddRow(table, map[string]string{"a": "a1", "b": "b1", "c": "c1"})
	s.AddRow(table, map[string]string{"a": "a2", "b": "b2", "c": "c2"})
	s.DeleteRow(table, 1) // leave a gap so preserved ids are observable
	s.AddRow(table, map[string]string{"a": "a3", "b": "b3", "c": "c3"})

	before, _ := s.Data(table)

	if err := s.DeleteColumn(table, "b"); err != nil {
		t.Fatalf("DeleteColumn: %v", err)
	}

	cols, err := s.Columns(table)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if len(cols) != 2 || cols[0] != "a" || cols[1] != "c" {
		t.Errorf("columns after rebuild = %v", cols)
	}

	after, err := s.Data(table)
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if len(after.Rows) != len(before.Rows) {
		t.Fatalf("row count changed: %d -> %d", len(before.Rows), len(after.Rows))
	}
	for i, row := range after.Rows {
		want := before.Rows[i]
		if row.ID != want.ID {
			t.Errorf("row %d id changed: %d -> %d", i, want.ID, row.ID)
		}
		if row.Values["a"] != want.Values["a"] || row.Values["c"] != want.Values["c"] {
			t.Errorf("row %d surviving cells changed: %v -> %v", i, want.Values, row.Values)
		}
		if _, ok := row.Values["b"]; ok {
			t.Errorf("row %d still has deleted column", i)
		}
	}

	// New rows continue past the preserved ids.
	id, err := s.AddRow(table, map[string]string{"a": "a4"})
	if err != nil {
		t.Fatalf("AddRow after rebuild: %v", err)
	}
	if id <= after.Rows[len(after.Rows)-1].ID {
		t.Errorf("new id %d does not extend preserved ids", id)
	}

	var nf *sheet.NotFoundError
	if err := s.DeleteColumn(table, "b"); !errors.As(err, &nf) {
		t.Errorf("deleting missing column: got %v", err)
	}
}

func TestDataHeaderOrder(t *testing.T) {
	s := openTestStore(t)
	table, _, _ := s.Create("t", []string{"x", "y", "z"})
	s.DeleteColumn(table, "y")
	s.AddColumn(table, "y", "")

	data, err := s.Data(table)
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	h := data.Header()
	want := []string{"id", "x", "z", "y"}
	if len(h) != len(want) {
		t.Fatalf("header = %v, want %v", h, want)
	}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("header = %v, want %v", h, want)
		}
	}
}

func TestDropAndList(t *testing.T) {
	s := openTestStore(t)
	s.Create("first", []string{"a"})
	s.Create("second", []string{"b"})

	infos, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 || infos[0].Name != "first" {
		t.Errorf("infos = %+v", infos)
	}

	if err := s.Drop("first"); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	var nf *sheet.NotFoundError
	if err := s.Drop("first"); !errors.As(err, &nf) {
		t.Errorf("double drop: got %v", err)
	}

	infos, _ = s.List()
	if len(infos) != 1 || infos[0].Name != "second" {
		t.Errorf("infos after drop = %+v", infos)
	}
}
