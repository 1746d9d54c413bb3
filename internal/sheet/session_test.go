package sheet_test

import (
	"errors"
	"testing"

	"sheet-agent/internal/sheet"

	_ "modernc.org/sqlite"
)

func TestSessionResolve(t *testing.T) {
	sess := sheet.NewSession(openTestStore(t))

	if _, err := sess.Resolve(""); !errors.Is(err, sheet.ErrNoSelection) {
		t.Errorf("no selection: got %v", err)
	}

	table, _, err := sess.Create("Tasks", []string{"task"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Current() != table {
		t.Errorf("create did not select: current = %q", sess.Current())
	}

	got, err := sess.Resolve("")
	if err != nil || got != table {
		t.Errorf("Resolve(\"\") = %q, %v", got, err)
	}

	var nf *sheet.NotFoundError
	if _, err := sess.Resolve("nope"); !errors.As(err, &nf) {
		t.Errorf("unknown explicit target: got %v", err)
	}
}

func TestSessionDropClearsSelection(t *testing.T) {
	sess := sheet.NewSession(openTestStore(t))
	sess.Create("a", []string{"x"})
	sess.Create("b", []string{"x"})

	if _, err := sess.Use("a"); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if err := sess.Drop("a"); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if sess.Current() != "" {
		t.Errorf("selection not cleared: %q", sess.Current())
	}
	if _, err := sess.Resolve(""); !errors.Is(err, sheet.ErrNoSelection) {
		t.Errorf("after drop: got %v", err)
	}

	// Dropping a non-selected sheet keeps the selection.
	sess.Use("b")
	sess.Create("c", []string{"x"})
	if err := sess.Drop("b"); err != nil {
		t.Fatalf("Drop b: %v", err)
	}
	if sess.Current() != "c" {
		t.Errorf("selection lost: %q", sess.Current())
	}
}

func TestSessionAutoSelect(t *testing.T) {
	s := openTestStore(t)
	s.Create("first", []string{"a"})
	s.Create("second", []string{"a"})

	sess := sheet.NewSession(s)
	name, picked, err := sess.AutoSelect()
	if err != nil {
		t.Fatalf("AutoSelect: %v", err)
	}
	if !picked || name != "first" {
		t.Errorf("AutoSelect = %q, %v", name, picked)
	}

	// Second call is a no-op.
	name, picked, _ = sess.AutoSelect()
	if picked || name != "first" {
		t.Errorf("repeat AutoSelect = %q, %v", name, picked)
	}
}
