// Package chart renders spreadsheet snapshots as PNG images, choosing a
// sensible chart kind and axes from the data when the caller does not.
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"

	"sheet-agent/internal/sheet"
)

// Kind is a supported chart type.
type Kind string

const (
	Bar       Kind = "bar"
	Line      Kind = "line"
	Scatter   Kind = "scatter"
	Pie       Kind = "pie"
	Histogram Kind = "histogram"
)

// ParseKind validates an explicit user-supplied chart type.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Bar:
		return Bar, nil
	case Line:
		return Line, nil
	case Scatter:
		return Scatter, nil
	case Pie:
		return Pie, nil
	case Histogram:
		return Histogram, nil
	default:
		return "", fmt.Errorf("unknown plot type %q (supported: bar, line, scatter, pie, histogram)", s)
	}
}

// Options are all optional; blanks are filled from the data.
type Options struct {
	Kind       string
	XColumn    string
	YColumn    string
	Title      string
	OutputFile string
	PlotsDir   string
}

// Result describes what was drawn and where it landed.
type Result struct {
	Path  string
	Kind  Kind
	X, Y  string
	Title string
}

const (
	chartWidth  = 1000
	chartHeight = 600
)

// Render draws the spreadsheet and writes a PNG. All failures here are
// recoverable user-level errors; the session continues after reporting.
func Render(data *sheet.Data, opts Options) (*Result, error) {
	if len(data.Rows) == 0 {
		return nil, fmt.Errorf("no data to plot: spreadsheet %q is empty", data.Sheet)
	}
	if len(data.Columns) == 0 {
		return nil, fmt.Errorf("no plottable columns in %q", data.Sheet)
	}

	numeric, categorical := Classify(data)

	var kind Kind
	if opts.Kind != "" {
		k, err := ParseKind(opts.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	} else {
		kind = AutoKind(numeric, categorical)
	}

	x := sheet.Sanitize(opts.XColumn)
	y := sheet.Sanitize(opts.YColumn)
	x, y = autoAxes(kind, x, y, numeric, categorical, data.Columns)

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = autoTitle(kind, data.Sheet, x, y)
	}

	path := outputPath(opts.OutputFile, opts.PlotsDir, data.Sheet, kind)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create plot directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create plot file: %w", err)
	}
	defer f.Close()

	res := &Result{Path: path, Kind: kind, X: x, Y: y, Title: title}
	switch kind {
	case Bar:
		err = renderBar(f, data, title, x, &res.Y)
	case Line:
		err = renderLine(f, data, title, x, y)
	case Scatter:
		err = renderScatter(f, data, title, x, y, numeric, &res.Y)
	case Pie:
		err = renderPie(f, data, title, x, y)
	case Histogram:
		err = renderHistogram(f, data, title, x)
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to render %s chart: %w", kind, err)
	}
	return res, nil
}

func outputPath(explicit, dir, sheetName string, kind Kind) string {
	if explicit == "" {
		if dir == "" {
			dir = "plots"
		}
		return filepath.Join(dir, fmt.Sprintf("%s_%s.png", sheetName, kind))
	}
	// Every renderer emits PNG bytes, so any other extension would lie
	// about the file's contents.
	if strings.ToLower(filepath.Ext(explicit)) == ".png" {
		return explicit
	}
	return explicit + ".png"
}

// renderBar draws one bar per x value with a numeric y, or falls back to
// frequency counts when y is absent or non-numeric.
func renderBar(f *os.File, data *sheet.Data, title, x string, yOut *string) error {
	labels := make([]string, len(data.Rows))
	for i, row := range data.Rows {
		if v := row.Values[x]; v != "" {
			labels[i] = v
		} else {
			labels[i] = "(blank)"
		}
	}

	var bars []gochart.Value
	if *yOut != "" && IsNumeric(data, *yOut) {
		values := NumericValues(data, *yOut)
		for i, label := range labels {
			bars = append(bars, gochart.Value{Label: label, Value: values[i]})
		}
	} else {
		*yOut = "count"
		counts := map[string]int{}
		var order []string
		for _, label := range labels {
			if _, seen := counts[label]; !seen {
				order = append(order, label)
			}
			counts[label]++
		}
		for _, label := range order {
			bars = append(bars, gochart.Value{Label: label, Value: float64(counts[label])})
		}
	}

	c := gochart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}
	return c.Render(gochart.PNG, f)
}

func renderLine(f *os.File, data *sheet.Data, title, x, y string) error {
	xs := make([]float64, len(data.Rows))
	for i := range data.Rows {
		xs[i] = float64(i)
	}
	var ys []float64
	if y != "" {
		ys = NumericValues(data, y)
	} else {
		ys = xs
	}

	c := gochart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  gochart.XAxis{Name: displayName(x)},
		YAxis:  gochart.YAxis{Name: displayName(y)},
		Series: []gochart.Series{
			gochart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return c.Render(gochart.PNG, f)
}

func renderScatter(f *os.File, data *sheet.Data, title, x, y string, numeric []string, yOut *string) error {
	if y == "" {
		if len(numeric) > 1 {
			y = numeric[1]
		} else if len(numeric) == 1 {
			y = numeric[0]
		}
		*yOut = y
	}

	c := gochart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  gochart.XAxis{Name: displayName(x)},
		YAxis:  gochart.YAxis{Name: displayName(y)},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: NumericValues(data, x),
				YValues: NumericValues(data, y),
				Style: gochart.Style{
					StrokeWidth: gochart.Disabled,
					DotWidth:    6,
				},
			},
		},
	}
	return c.Render(gochart.PNG, f)
}

// renderPie aggregates a numeric y per x label, or counts labels.
func renderPie(f *os.File, data *sheet.Data, title, x, y string) error {
	sums := map[string]float64{}
	var order []string
	numericY := y != "" && IsNumeric(data, y)
	yValues := NumericValues(data, y)

	for i, row := range data.Rows {
		label := row.Values[x]
		if label == "" {
			label = "Unknown"
		}
		if _, seen := sums[label]; !seen {
			order = append(order, label)
		}
		if numericY {
			sums[label] += yValues[i]
		} else {
			sums[label]++
		}
	}

	var values []gochart.Value
	for _, label := range order {
		values = append(values, gochart.Value{Label: label, Value: sums[label]})
	}

	c := gochart.PieChart{
		Title:  title,
		Width:  chartHeight, // square canvas
		Height: chartHeight,
		Values: values,
	}
	return c.Render(gochart.PNG, f)
}

// renderHistogram bins the x column and draws frequencies as bars.
func renderHistogram(f *os.File, data *sheet.Data, title, x string) error {
	values := NumericValues(data, x)
	counts, edges := Bins(values)

	var bars []gochart.Value
	for i, n := range counts {
		label := fmt.Sprintf("%.4g-%.4g", edges[i], edges[i+1])
		bars = append(bars, gochart.Value{Label: label, Value: float64(n)})
	}

	c := gochart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}
	return c.Render(gochart.PNG, f)
}

// Bins buckets values using the Sturges rule. The returned edges slice has
// one more entry than counts.
func Bins(values []float64) ([]int, []float64) {
	if len(values) == 0 {
		return nil, nil
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	n := 1 + int(math.Ceil(math.Log2(float64(len(values)))))
	if max == min {
		return []int{len(values)}, []float64{min, max}
	}

	counts := make([]int, n)
	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := 0; i <= n; i++ {
		edges[i] = min + width*float64(i)
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	return counts, edges
}
