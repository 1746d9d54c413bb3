package agent

// Tool definitions sent with every model request. The schema mirrors
// DecodeCommand: every tool listed here must decode to a Command.

type toolDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputSchema jsonSchema `json:"input_schema"`
}

type jsonSchema struct {
	Type       string              `json:"type"`
	Properties map[string]property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func toolDefs() []toolDef {
	return []toolDef{
		{
			Name:        "create_spreadsheet",
			Description: "Create a new spreadsheet with specified columns. Use this when the user wants to start a new table or spreadsheet.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"name":    {Type: "string", Description: "Spreadsheet name"},
					"columns": {Type: "string", Description: "Comma-separated column names"},
				},
				Required: []string{"name", "columns"},
			},
		},
		{
			Name:        "add_row",
			Description: "Add a new row to the current spreadsheet. Provide data as column:value pairs.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"data": {Type: "string", Description: "Row data, format: column1:value1, column2:value2"},
				},
				Required: []string{"data"},
			},
		},
		{
			Name:        "add_column",
			Description: "Add a new column to the current spreadsheet.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"column_name":   {Type: "string"},
					"default_value": {Type: "string", Description: "Value backfilled into existing rows, may be empty"},
				},
				Required: []string{"column_name"},
			},
		},
		{
			Name:        "edit_cell",
			Description: "Edit a specific cell in the spreadsheet by row ID and column name.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"row_id": {Type: "integer"},
					"column": {Type: "string"},
					"value":  {Type: "string"},
				},
				Required: []string{"row_id", "column", "value"},
			},
		},
		{
			Name:        "delete_row",
			Description: "Delete a row from the spreadsheet by its ID.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"row_id": {Type: "integer"},
				},
				Required: []string{"row_id"},
			},
		},
		{
			Name:        "delete_column",
			Description: "Delete a column from the spreadsheet by name.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"column_name": {Type: "string"},
				},
				Required: []string{"column_name"},
			},
		},
		{
			Name:        "display",
			Description: "Display the current spreadsheet. Use this to show the user the current state of the data.",
			InputSchema: jsonSchema{Type: "object", Properties: map[string]property{}},
		},
		{
			Name:        "list_spreadsheets",
			Description: "List all available spreadsheets in the database.",
			InputSchema: jsonSchema{Type: "object", Properties: map[string]property{}},
		},
		{
			Name:        "switch_spreadsheet",
			Description: "Switch to a different spreadsheet by name.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"name": {Type: "string"},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "delete_spreadsheet",
			Description: "Delete an entire spreadsheet by name. Only use when the user clearly asks to remove a whole spreadsheet.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"name": {Type: "string"},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "export_csv",
			Description: "Export the current spreadsheet to a CSV file.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"filename": {Type: "string", Description: "Output filename, optional"},
				},
			},
		},
		{
			Name:        "plot_data",
			Description: "Create a visualization/plot of the spreadsheet data. If no parameters specified, analyze the data and create the most appropriate visualization. Supports bar, line, scatter, pie, and histogram charts.",
			InputSchema: jsonSchema{
				Type: "object",
				Properties: map[string]property{
					"plot_type":   {Type: "string", Description: "bar, line, scatter, pie or histogram"},
					"x_column":    {Type: "string"},
					"y_column":    {Type: "string"},
					"title":       {Type: "string"},
					"output_file": {Type: "string"},
				},
			},
		},
	}
}
