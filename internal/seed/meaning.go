package seed

import "strings"

// Common column-name abbreviations expanded before keyword matching.
var abbreviations = map[string]string{
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "ph": "phone",
	"img": "image", "msg": "message", "txt": "text", "tit": "title",
	"usr": "user", "emp": "employee", "dept": "department",
	"cat": "category", "loc": "location", "num": "number",
	"val": "value", "stat": "status", "sts": "status",
}

// Meaning labels drive the fake-value generators in generator.go.
const (
	MeaningName     = "name"
	MeaningEmail    = "email"
	MeaningPhone    = "phone"
	MeaningAddress  = "address"
	MeaningCity     = "city"
	MeaningCompany  = "company"
	MeaningDate     = "date"
	MeaningPrice    = "price"
	MeaningQuantity = "quantity"
	MeaningCategory = "category"
	MeaningStatus   = "status"
	MeaningURL      = "url"
	MeaningNote     = "note"
	MeaningWord     = "word" // fallback
)

// AnalyzeMeaning guesses what a column holds from its sanitized name.
func AnalyzeMeaning(colName string) string {
	n := strings.ToLower(colName)

	// Expand known abbreviations token-wise so "amt" hits "amount".
	tokens := strings.Split(n, "_")
	for i, tok := range tokens {
		if full, ok := abbreviations[tok]; ok {
			tokens[i] = full
		}
	}
	n = strings.Join(tokens, "_")

	has := func(keys ...string) bool {
		for _, k := range keys {
			if strings.Contains(n, k) {
				return true
			}
		}
		return false
	}

	switch {
	case has("email", "mail"):
		return MeaningEmail
	case has("phone", "mobile", "contact_number"):
		return MeaningPhone
	case has("address", "street"):
		return MeaningAddress
	case has("city", "town"):
		return MeaningCity
	case has("company", "vendor", "supplier", "employer"):
		return MeaningCompany
	case has("date", "day", "time", "created", "updated", "due"):
		return MeaningDate
	case has("price", "amount", "cost", "total", "fee", "salary", "budget", "spent"):
		return MeaningPrice
	case has("quantity", "count", "number", "qty", "stock"):
		return MeaningQuantity
	case has("category", "type", "kind", "genre", "group"):
		return MeaningCategory
	case has("status", "state"):
		return MeaningStatus
	case has("url", "link", "website"):
		return MeaningURL
	case has("note", "description", "comment", "detail", "remark"):
		return MeaningNote
	case has("name", "title", "item", "product", "task"):
		return MeaningName
	default:
		return MeaningWord
	}
}
