package agent

import (
	"fmt"
	"path/filepath"
	"strings"

	"sheet-agent/internal/chart"
	"sheet-agent/internal/display"
	"sheet-agent/internal/extproc"
	"sheet-agent/internal/sheet"
)

// Dispatcher executes decoded commands against one session. Mutating
// commands re-render the spreadsheet so the user always sees the result.
// The returned string summarizes the outcome for the interpreter.
type Dispatcher struct {
	Session  *sheet.Session
	Console  *display.Console
	Opener   extproc.Opener // nil disables opening rendered charts
	PlotsDir string
}

func (d *Dispatcher) Dispatch(cmd Command) (string, error) {
	switch c := cmd.(type) {
	case CreateSheet:
		table, cols, err := d.Session.Create(c.Name, c.Columns)
		if err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Created spreadsheet '%s'", table))
		d.render(table)
		return fmt.Sprintf("Created spreadsheet '%s' with columns: %s. The spreadsheet is now displayed.",
			table, strings.Join(cols, ", ")), nil

	case AddRow:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		id, err := d.Session.Store.AddRow(table, c.Values)
		if err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Added row %d to '%s'", id, table))
		d.render(table)
		return fmt.Sprintf("Added row %d. The updated spreadsheet is now displayed.", id), nil

	case AddColumn:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		col, err := d.Session.Store.AddColumn(table, c.Name, c.Default)
		if err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Added column '%s' to '%s'", col, table))
		d.render(table)
		return fmt.Sprintf("Added column '%s'. The updated spreadsheet is now displayed.", col), nil

	case EditCell:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		if err := d.Session.Store.EditCell(table, c.RowID, c.Column, c.Value); err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Updated row %d, column '%s'", c.RowID, c.Column))
		d.render(table)
		return fmt.Sprintf("Updated row %d, column '%s' to '%s'. The updated spreadsheet is now displayed.",
			c.RowID, c.Column, c.Value), nil

	case DeleteRow:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		if err := d.Session.Store.DeleteRow(table, c.RowID); err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Deleted row %d", c.RowID))
		d.render(table)
		return fmt.Sprintf("Deleted row %d. The updated spreadsheet is now displayed.", c.RowID), nil

	case DeleteColumn:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		if err := d.Session.Store.DeleteColumn(table, c.Name); err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Deleted column '%s'", c.Name))
		d.render(table)
		return fmt.Sprintf("Deleted column '%s'. The updated spreadsheet is now displayed.", c.Name), nil

	case Show:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		data, err := d.Session.Store.Data(table)
		if err != nil {
			return "", err
		}
		d.Console.Sheet(data)
		return fmt.Sprintf("Displayed spreadsheet '%s' with %d rows and %d columns.",
			data.Sheet, len(data.Rows), len(data.Columns)), nil

	case List:
		infos, err := d.Session.Store.List()
		if err != nil {
			return "", err
		}
		current := d.Session.Current()
		d.Console.SheetList(infos, current)
		if current == "" {
			current = "none selected"
		}
		return fmt.Sprintf("Found %d spreadsheet(s). Current: %s", len(infos), current), nil

	case Switch:
		table, err := d.Session.Use(c.Name)
		if err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Switched to '%s'", table))
		d.render(table)
		return fmt.Sprintf("Switched to spreadsheet '%s'. The spreadsheet is now displayed.", table), nil

	case DeleteSheet:
		if err := d.Session.Drop(c.Name); err != nil {
			return "", err
		}
		name := sheet.Sanitize(c.Name)
		d.Console.Success(fmt.Sprintf("Deleted spreadsheet '%s'", name))
		return fmt.Sprintf("Deleted spreadsheet '%s'.", name), nil

	case Export:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		path, err := d.Session.Store.ExportCSV(table, exportPath(d.Session.Store.ExportsDir, c.Filename))
		if err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Exported to %s", path))
		return fmt.Sprintf("Exported spreadsheet to %s", path), nil

	case Plot:
		table, err := d.Session.Resolve("")
		if err != nil {
			return "", err
		}
		data, err := d.Session.Store.Data(table)
		if err != nil {
			return "", err
		}
		result, err := chart.Render(data, chart.Options{
			Kind:       c.Kind,
			XColumn:    c.XColumn,
			YColumn:    c.YColumn,
			Title:      c.Title,
			OutputFile: c.OutputFile,
			PlotsDir:   d.PlotsDir,
		})
		if err != nil {
			return "", err
		}
		d.Console.Success(fmt.Sprintf("Created %s chart: %s", result.Kind, result.Path))
		if d.Opener != nil {
			if err := d.Opener.Open(result.Path); err == nil {
				d.Console.Info("Plot opened in default viewer")
			}
		}
		y := result.Y
		if y == "" {
			y = "N/A"
		}
		return fmt.Sprintf("Created %s chart and saved to %s. X-axis: %s, Y-axis: %s",
			result.Kind, result.Path, result.X, y), nil

	default:
		return "", fmt.Errorf("unhandled command %T", cmd)
	}
}

// exportPath maps a user-supplied filename into the exports directory,
// appending .csv when missing. Empty means the store default.
func exportPath(dir, filename string) string {
	if filename == "" {
		return ""
	}
	if !strings.HasSuffix(filename, ".csv") {
		filename += ".csv"
	}
	if filepath.IsAbs(filename) || strings.ContainsRune(filename, filepath.Separator) {
		return filename
	}
	return filepath.Join(dir, filename)
}

func (d *Dispatcher) render(table string) {
	data, err := d.Session.Store.Data(table)
	if err != nil {
		d.Console.Error(err.Error())
		return
	}
	d.Console.Sheet(data)
}
