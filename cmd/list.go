package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all spreadsheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := Store.List()
		if err != nil {
			return err
		}
		Console.SheetList(infos, Session.Current())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
