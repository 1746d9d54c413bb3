package seed_test

import (
	"testing"

	"sheet-agent/internal/chart"
	"sheet-agent/internal/seed"
)

func TestAnalyzeMeaning(t *testing.T) {
	cases := []struct {
		col  string
		want string
	}{
		{"email", seed.MeaningEmail},
		{"contact_mail", seed.MeaningEmail},
		{"phone", seed.MeaningPhone},
		{"home_address", seed.MeaningAddress},
		{"city", seed.MeaningCity},
		{"vendor", seed.MeaningCompany},
		{"due_date", seed.MeaningDate},
		{"created", seed.MeaningDate},
		{"amount", seed.MeaningPrice},
		{"amt", seed.MeaningPrice}, // abbreviation expansion
		{"total_cost", seed.MeaningPrice},
		{"qty", seed.MeaningQuantity},
		{"category", seed.MeaningCategory},
		{"status", seed.MeaningStatus},
		{"website", seed.MeaningURL},
		{"notes", seed.MeaningNote},
		{"customer_name", seed.MeaningName},
		{"task", seed.MeaningName},
		{"zzz", seed.MeaningWord},
	}
	for _, c := range cases {
		if got := seed.AnalyzeMeaning(c.col); got != c.want {
			t.Errorf("AnalyzeMeaning(%q) = %q, want %q", c.col, got, c.want)
		}
	}
}

func TestRowCoversColumns(t *testing.T) {
	cols := []string{"item", "amount", "category", "notes"}
	row := seed.Row(cols)
	if len(row) != len(cols) {
		t.Fatalf("row has %d values, want %d", len(row), len(cols))
	}
	for _, c := range cols {
		if row[c] == "" {
			t.Errorf("column %q empty", c)
		}
	}
}

func TestPriceValuesAreNumeric(t *testing.T) {
	// Seeded amounts must classify as numeric or auto-plotting would
	// mislabel seeded sheets.
	for i := 0; i < 20; i++ {
		v := seed.Value("amount")
		if _, ok := chart.ParseNumber(v); !ok {
			t.Fatalf("seeded amount %q is not numeric", v)
		}
	}
}
