package agent_test

import (
	"encoding/json"
	"testing"

	"sheet-agent/internal/agent"
)

func TestParsePairs(t *testing.T) {
	cases := []struct {
		in   string
		want map[string]string
	}{
		{"description:coffee, amount:5", map[string]string{"description": "coffee", "amount": "5"}},
		{"note:see 10:30 meeting", map[string]string{"note": "see 10:30 meeting"}},
		{" name : Alice ", map[string]string{"name": "Alice"}},
		{"amount:", map[string]string{"amount": ""}},
		{"no separator here", map[string]string{}},
		{"", map[string]string{}},
	}
	for _, c := range cases {
		got := agent.ParsePairs(c.in)
		if len(got) != len(c.want) {
			t.Errorf("ParsePairs(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for k, v := range c.want {
			if got[k] != v {
				t.Errorf("ParsePairs(%q)[%q] = %q, want %q", c.in, k, got[k], v)
			}
		}
	}
}

func TestDecodeCommand(t *testing.T) {
	cmd, err := agent.DecodeCommand("create_spreadsheet",
		json.RawMessage(`{"name":"expenses","columns":"description, amount , category"}`))
	if err != nil {
		t.Fatal(err)
	}
	create, ok := cmd.(agent.CreateSheet)
	if !ok {
		t.Fatalf("got %T", cmd)
	}
	if create.Name != "expenses" || len(create.Columns) != 3 || create.Columns[1] != "amount" {
		t.Errorf("unexpected decode: %+v", create)
	}

	cmd, err = agent.DecodeCommand("edit_cell",
		json.RawMessage(`{"row_id":2,"column":"price","value":"10"}`))
	if err != nil {
		t.Fatal(err)
	}
	edit := cmd.(agent.EditCell)
	if edit.RowID != 2 || edit.Column != "price" || edit.Value != "10" {
		t.Errorf("unexpected decode: %+v", edit)
	}

	cmd, err = agent.DecodeCommand("plot_data",
		json.RawMessage(`{"plot_type":"BAR","x_column":" category "}`))
	if err != nil {
		t.Fatal(err)
	}
	plot := cmd.(agent.Plot)
	if plot.Kind != "bar" || plot.XColumn != "category" {
		t.Errorf("unexpected decode: %+v", plot)
	}

	if _, err := agent.DecodeCommand("display", nil); err != nil {
		t.Errorf("display with no args: %v", err)
	}
}

func TestDecodeCommandRejects(t *testing.T) {
	if _, err := agent.DecodeCommand("drop_database", nil); err == nil {
		t.Error("unknown tool accepted")
	}
	if _, err := agent.DecodeCommand("add_row", json.RawMessage(`{"data":"just words"}`)); err == nil {
		t.Error("pairless row data accepted")
	}
	if _, err := agent.DecodeCommand("edit_cell", json.RawMessage(`{"row_id":"two"}`)); err == nil {
		t.Error("non-numeric row id accepted")
	}
}
