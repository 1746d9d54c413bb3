package chart_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sheet-agent/internal/chart"
)

func TestRenderAutoBar(t *testing.T) {
	d := makeData([]string{"category", "amount"},
		map[string]string{"category": "food", "amount": "12"},
		map[string]string{"category": "travel", "amount": "30"},
		map[string]string{"category": "rent", "amount": "800"},
	)

	res, err := chart.Render(d, chart.Options{PlotsDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Kind != chart.Bar {
		t.Errorf("kind = %v, want bar", res.Kind)
	}
	if res.X != "category" || res.Y != "amount" {
		t.Errorf("axes = %q/%q", res.X, res.Y)
	}
	if filepath.Base(res.Path) != "test_sheet_bar.png" {
		t.Errorf("path = %q", res.Path)
	}
	info, err := os.Stat(res.Path)
	if err != nil || info.Size() == 0 {
		t.Errorf("plot file missing or empty: %v", err)
	}
}

func TestRenderScatterTwoNumerics(t *testing.T) {
	d := makeData([]string{"width", "height"},
		map[string]string{"width": "1", "height": "2"},
		map[string]string{"width": "2", "height": "4"},
		map[string]string{"width": "3", "height": "9"},
	)

	res, err := chart.Render(d, chart.Options{PlotsDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Kind != chart.Scatter {
		t.Errorf("kind = %v, want scatter", res.Kind)
	}
	if res.X != "width" || res.Y != "height" {
		t.Errorf("axes = %q/%q", res.X, res.Y)
	}
}

func TestRenderHistogramSingleNumeric(t *testing.T) {
	d := makeData([]string{"score"},
		map[string]string{"score": "10"},
		map[string]string{"score": "20"},
		map[string]string{"score": "22"},
		map[string]string{"score": "31"},
	)

	res, err := chart.Render(d, chart.Options{PlotsDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Kind != chart.Histogram {
		t.Errorf("kind = %v, want histogram", res.Kind)
	}
	if !strings.Contains(res.Title, "Distribution") {
		t.Errorf("title = %q", res.Title)
	}
}

func TestRenderRejects(t *testing.T) {
	empty := makeData([]string{"a"})
	if _, err := chart.Render(empty, chart.Options{PlotsDir: t.TempDir()}); err == nil {
		t.Error("empty sheet should not render")
	}

	d := makeData([]string{"a"}, map[string]string{"a": "1"})
	if _, err := chart.Render(d, chart.Options{Kind: "sparkline", PlotsDir: t.TempDir()}); err == nil {
		t.Error("unknown kind should be rejected")
	}
}

func TestRenderExplicitOutput(t *testing.T) {
	d := makeData([]string{"category", "amount"},
		map[string]string{"category": "a", "amount": "1"},
		map[string]string{"category": "b", "amount": "2"},
	)

	out := filepath.Join(t.TempDir(), "custom") // no extension
	res, err := chart.Render(d, chart.Options{Kind: "pie", OutputFile: out})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Path != out+".png" {
		t.Errorf("path = %q, want %q", res.Path, out+".png")
	}
	if res.Kind != chart.Pie {
		t.Errorf("kind = %v", res.Kind)
	}

	// Only .png names pass through unchanged. The renderers write PNG
	// bytes, so a requested .svg must not end up holding PNG data.
	svg := filepath.Join(t.TempDir(), "custom.svg")
	res, err = chart.Render(d, chart.Options{Kind: "pie", OutputFile: svg})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Path != svg+".png" {
		t.Errorf("path = %q, want %q", res.Path, svg+".png")
	}
	keep := filepath.Join(t.TempDir(), "custom.PNG")
	res, err = chart.Render(d, chart.Options{Kind: "pie", OutputFile: keep})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Path != keep {
		t.Errorf("path = %q, want %q", res.Path, keep)
	}
}
