package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export [spreadsheet]",
	Short: "Export a spreadsheet to CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := resolveTarget(args)
		if err != nil {
			return err
		}
		path, err := Store.ExportCSV(table, exportPath)
		if err != nil {
			return err
		}
		Console.Success(fmt.Sprintf("Exported to %s", path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "output file path (default exports/<name>.csv)")
	RootCmd.AddCommand(exportCmd)
}
