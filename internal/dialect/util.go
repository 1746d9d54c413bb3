package dialect

import "strings"

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// QuoteAll quotes every identifier in cols and joins them with commas.
func QuoteAll(cols []string, quote func(string) string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ", ")
}

// ColumnDefs renders `"col" TYPE` pairs for a CREATE TABLE body.
func ColumnDefs(cols []string, quote func(string) string, sqlType string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quote(c) + " " + sqlType
	}
	return strings.Join(defs, ", ")
}
