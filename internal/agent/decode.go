package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeCommand turns a tool call (name plus raw JSON arguments) into a
// typed Command. Unknown tool names are an error so the model cannot
// invent operations.
func DecodeCommand(name string, input json.RawMessage) (Command, error) {
	switch name {
	case "create_spreadsheet":
		var args struct {
			Name    string `json:"name"`
			Columns string `json:"columns"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return CreateSheet{Name: args.Name, Columns: splitList(args.Columns)}, nil

	case "add_row":
		var args struct {
			Data string `json:"data"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		values := ParsePairs(args.Data)
		if len(values) == 0 {
			return nil, fmt.Errorf("no column:value pairs in %q", args.Data)
		}
		return AddRow{Values: values}, nil

	case "add_column":
		var args struct {
			ColumnName   string `json:"column_name"`
			DefaultValue string `json:"default_value"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return AddColumn{Name: args.ColumnName, Default: args.DefaultValue}, nil

	case "edit_cell":
		var args struct {
			RowID  int64  `json:"row_id"`
			Column string `json:"column"`
			Value  string `json:"value"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return EditCell{RowID: args.RowID, Column: args.Column, Value: args.Value}, nil

	case "delete_row":
		var args struct {
			RowID int64 `json:"row_id"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return DeleteRow{RowID: args.RowID}, nil

	case "delete_column":
		var args struct {
			ColumnName string `json:"column_name"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return DeleteColumn{Name: args.ColumnName}, nil

	case "display":
		return Show{}, nil

	case "list_spreadsheets":
		return List{}, nil

	case "switch_spreadsheet":
		var args struct {
			Name string `json:"name"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return Switch{Name: args.Name}, nil

	case "delete_spreadsheet":
		var args struct {
			Name string `json:"name"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return DeleteSheet{Name: args.Name}, nil

	case "export_csv":
		var args struct {
			Filename string `json:"filename"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return Export{Filename: args.Filename}, nil

	case "plot_data":
		var args struct {
			PlotType   string `json:"plot_type"`
			XColumn    string `json:"x_column"`
			YColumn    string `json:"y_column"`
			Title      string `json:"title"`
			OutputFile string `json:"output_file"`
		}
		if err := decodeArgs(input, &args); err != nil {
			return nil, err
		}
		return Plot{
			Kind:       strings.ToLower(strings.TrimSpace(args.PlotType)),
			XColumn:    strings.TrimSpace(args.XColumn),
			YColumn:    strings.TrimSpace(args.YColumn),
			Title:      strings.TrimSpace(args.Title),
			OutputFile: strings.TrimSpace(args.OutputFile),
		}, nil

	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

func decodeArgs(input json.RawMessage, dst any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, dst); err != nil {
		return fmt.Errorf("decode tool arguments: %w", err)
	}
	return nil
}

// ParsePairs parses the "column:value, column:value" row format. Values
// may contain colons; only the first one splits. Pairs without a colon
// are skipped.
func ParsePairs(s string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	return values
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
