package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sheet-agent/internal/seed"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed [spreadsheet]",
	Short: "Fill a spreadsheet with plausible fake rows",
	Long: `Generates rows whose values match each column's inferred meaning:
email columns get email addresses, price columns get prices, and so on.
Useful for trying out charts and exports before real data exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := resolveTarget(args)
		if err != nil {
			return err
		}
		columns, err := Store.Columns(table)
		if err != nil {
			return err
		}

		target := seedCount
		if target <= 0 {
			target = viper.GetInt("settings.seed_count")
		}

		log.Printf("Seeding %d rows into %q...", target, table)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(target).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Seeding: "
		})

		for i := 0; i < target; i++ {
			if _, err := Store.AddRow(table, seed.Row(columns)); err != nil {
				uiprogress.Stop()
				return fmt.Errorf("failed to seed row %d: %w", i+1, err)
			}
			bar.Incr()
		}
		uiprogress.Stop()

		Console.Success(fmt.Sprintf("Seeded %d rows into '%s' in %s", target, table, time.Since(start).Round(time.Millisecond)))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "c", 0, "number of rows to generate (default from config)")
	RootCmd.AddCommand(seedCmd)
}
