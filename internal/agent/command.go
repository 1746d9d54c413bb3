// Package agent interprets natural-language input and executes the
// resulting spreadsheet operations. The language-model client produces
// Command values; Dispatcher runs them against a session.
package agent

// Command is one spreadsheet operation, decoded from a tool call into a
// strongly typed variant. Dispatcher switches over the concrete type.
type Command interface {
	commandName() string
}

// CreateSheet creates a spreadsheet and selects it.
type CreateSheet struct {
	Name    string
	Columns []string
}

// AddRow appends a row to the current spreadsheet.
type AddRow struct {
	Values map[string]string
}

// AddColumn appends a column, optionally backfilling existing rows.
type AddColumn struct {
	Name    string
	Default string
}

// EditCell sets one cell by row id and column name.
type EditCell struct {
	RowID  int64
	Column string
	Value  string
}

// DeleteRow removes a row by id.
type DeleteRow struct {
	RowID int64
}

// DeleteColumn removes a column by name.
type DeleteColumn struct {
	Name string
}

// Show renders the current spreadsheet.
type Show struct{}

// List renders every registered spreadsheet.
type List struct{}

// Switch changes the session's current spreadsheet.
type Switch struct {
	Name string
}

// DeleteSheet drops a spreadsheet entirely.
type DeleteSheet struct {
	Name string
}

// Export writes the current spreadsheet to a CSV file.
type Export struct {
	Filename string
}

// Plot renders a chart of the current spreadsheet. All fields are
// optional; empty ones are chosen from the data.
type Plot struct {
	Kind       string
	XColumn    string
	YColumn    string
	Title      string
	OutputFile string
}

func (CreateSheet) commandName() string  { return "create_spreadsheet" }
func (AddRow) commandName() string       { return "add_row" }
func (AddColumn) commandName() string    { return "add_column" }
func (EditCell) commandName() string     { return "edit_cell" }
func (DeleteRow) commandName() string    { return "delete_row" }
func (DeleteColumn) commandName() string { return "delete_column" }
func (Show) commandName() string         { return "display" }
func (List) commandName() string         { return "list_spreadsheets" }
func (Switch) commandName() string       { return "switch_spreadsheet" }
func (DeleteSheet) commandName() string  { return "delete_spreadsheet" }
func (Export) commandName() string       { return "export_csv" }
func (Plot) commandName() string         { return "plot_data" }
