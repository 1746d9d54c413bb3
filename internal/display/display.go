// Package display renders spreadsheets and feedback messages on the
// terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"sheet-agent/internal/sheet"
)

// Console writes styled output to Out. Tests point Out at a buffer.
type Console struct {
	Out io.Writer
}

func New() *Console {
	return &Console{Out: os.Stdout}
}

func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", text.Colors{text.FgGreen, text.Bold}.Sprint(">"), msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", text.Colors{text.FgRed, text.Bold}.Sprint("!"), text.FgRed.Sprint(msg))
}

func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", text.Colors{text.FgBlue, text.Bold}.Sprint("i"), msg)
}

// Transcription echoes what the voice pipeline heard.
func (c *Console) Transcription(heard string) {
	fmt.Fprintf(c.Out, "%s %q\n", text.Faint.Sprint("Heard:"), heard)
}

// Sheet renders a spreadsheet snapshot as a table; empty cells show a dash.
func (c *Console) Sheet(data *sheet.Data) {
	w := table.NewWriter()
	w.SetOutputMirror(c.Out)
	w.SetStyle(table.StyleRounded)
	w.SetTitle(titleCase(data.Sheet))

	header := table.Row{"ID"}
	for _, col := range data.Columns {
		header = append(header, titleCase(col))
	}
	w.AppendHeader(header)

	for _, row := range data.Rows {
		r := table.Row{strconv.FormatInt(row.ID, 10)}
		for _, col := range data.Columns {
			v := row.Values[col]
			if v == "" {
				v = text.Faint.Sprint("-")
			}
			r = append(r, v)
		}
		w.AppendRow(r)
	}

	fmt.Fprintln(c.Out)
	w.Render()
	if len(data.Rows) == 0 {
		fmt.Fprintln(c.Out, text.Faint.Sprint("  (no rows yet)"))
	}
	fmt.Fprintln(c.Out)
}

// SheetList renders the registry with a marker on the current selection.
func (c *Console) SheetList(infos []sheet.Info, current string) {
	if len(infos) == 0 {
		c.Info("No spreadsheets exist yet. Create one with a command like 'create a new expense tracker'")
		return
	}

	w := table.NewWriter()
	w.SetOutputMirror(c.Out)
	w.SetStyle(table.StyleRounded)
	w.SetTitle("Available Spreadsheets")
	w.AppendHeader(table.Row{"Name", "Columns", "Created", "Active"})

	for _, info := range infos {
		marker := text.Faint.Sprint("o")
		if info.Name == current {
			marker = text.Colors{text.FgGreen, text.Bold}.Sprint("*")
		}
		w.AppendRow(table.Row{info.Name, strings.Join(info.Columns, ", "), info.CreatedAt, marker})
	}

	fmt.Fprintln(c.Out)
	w.Render()
	fmt.Fprintln(c.Out)
}

func (c *Console) Welcome(voiceNote string) {
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "%s %s\n",
		text.Colors{text.FgCyan, text.Bold}.Sprint("Spreadsheet Agent"), "ready")
	fmt.Fprintln(c.Out, text.Faint.Sprint("Type commands in natural language, !help for commands, !voice for voice input"))
	if voiceNote != "" {
		c.Info(voiceNote)
	}
	fmt.Fprintln(c.Out)
}

func (c *Console) Help() {
	fmt.Fprint(c.Out, `
Natural language commands:
  "create a spreadsheet for tracking expenses"
  "add a row: coffee, 5 dollars, today"
  "change row 2 price to 10"
  "delete row 3"
  "add a column called notes"
  "plot the data"

Special commands:
  !voice             Record a voice command
  !show              Display the current spreadsheet
  !list              List all spreadsheets
  !export [file]     Export to CSV
  !help              Show this help
  !quit              Exit

`)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
