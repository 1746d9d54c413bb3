package chart

import (
	"strconv"
	"strings"

	"sheet-agent/internal/sheet"
)

// ParseNumber interprets a cell as a number, tolerating thousands
// separators and a leading currency symbol ("$1,234.50").
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether a column holds numeric data: at least one
// non-empty cell must parse as a number.
func IsNumeric(data *sheet.Data, col string) bool {
	for _, row := range data.Rows {
		if v := row.Values[col]; v != "" {
			if _, ok := ParseNumber(v); ok {
				return true
			}
		}
	}
	return false
}

// NumericValues extracts one float per row for a column; cells that do
// not parse (or are empty) contribute zero so the series stays aligned
// with the row list.
func NumericValues(data *sheet.Data, col string) []float64 {
	values := make([]float64, len(data.Rows))
	for i, row := range data.Rows {
		if f, ok := ParseNumber(row.Values[col]); ok {
			values[i] = f
		}
	}
	return values
}

// Classify splits the plottable columns (id excluded) into numeric and
// categorical, preserving registry order.
func Classify(data *sheet.Data) (numeric, categorical []string) {
	for _, c := range data.Columns {
		if IsNumeric(data, c) {
			numeric = append(numeric, c)
		} else {
			categorical = append(categorical, c)
		}
	}
	return numeric, categorical
}

// AutoKind picks a chart kind from the column classification.
func AutoKind(numeric, categorical []string) Kind {
	switch {
	case len(numeric) >= 2:
		return Scatter
	case len(numeric) == 1 && len(categorical) > 0:
		return Bar
	case len(numeric) == 1:
		return Histogram
	default:
		// Categorical only (or nothing): frequency bars.
		return Bar
	}
}

// autoAxes picks x and y columns when the caller left them blank.
func autoAxes(kind Kind, x, y string, numeric, categorical, all []string) (string, string) {
	if x == "" {
		switch {
		case len(categorical) > 0:
			x = categorical[0]
		case len(numeric) > 0:
			x = numeric[0]
		default:
			x = all[0]
		}
	}
	if y == "" && kind != Histogram && kind != Pie {
		for _, c := range numeric {
			if c != x {
				y = c
				break
			}
		}
		if y == "" && len(numeric) > 0 {
			y = numeric[0]
		}
	}
	return x, y
}

// displayName turns a sanitized identifier back into something readable:
// underscores to spaces, words capitalized.
func displayName(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// autoTitle builds a chart title from the sheet and axis names.
func autoTitle(kind Kind, sheetName, x, y string) string {
	title := displayName(sheetName)
	switch {
	case kind == Histogram:
		title += " - " + displayName(x) + " Distribution"
	case y != "":
		title += " - " + displayName(y) + " by " + displayName(x)
	}
	return title
}
