// Package seed fills spreadsheets with plausible demo rows so chart and
// export behavior can be tried without typing data in by hand.
package seed

import (
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

var categories = []string{"food", "travel", "office", "utilities", "entertainment", "health", "other"}
var statuses = []string{"open", "in progress", "done", "blocked"}

// Value generates a fake cell value for a column based on its meaning.
func Value(column string) string {
	switch AnalyzeMeaning(column) {
	case MeaningEmail:
		return gofakeit.Email()
	case MeaningPhone:
		return gofakeit.Phone()
	case MeaningAddress:
		return gofakeit.Street()
	case MeaningCity:
		return gofakeit.City()
	case MeaningCompany:
		return gofakeit.Company()
	case MeaningDate:
		return gofakeit.Date().Format("2006-01-02")
	case MeaningPrice:
		return fmt.Sprintf("%.2f", gofakeit.Price(1, 500))
	case MeaningQuantity:
		return strconv.Itoa(gofakeit.Number(1, 100))
	case MeaningCategory:
		return gofakeit.RandomString(categories)
	case MeaningStatus:
		return gofakeit.RandomString(statuses)
	case MeaningURL:
		return gofakeit.URL()
	case MeaningNote:
		return gofakeit.Sentence(6)
	case MeaningName:
		return gofakeit.Name()
	default:
		return gofakeit.Word()
	}
}

// Row generates one fake row covering every column.
func Row(columns []string) map[string]string {
	row := make(map[string]string, len(columns))
	for _, c := range columns {
		row[c] = Value(c)
	}
	return row
}
