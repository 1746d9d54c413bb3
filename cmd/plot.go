package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sheet-agent/internal/chart"
	"sheet-agent/internal/extproc"
)

var (
	plotKind   string
	plotX      string
	plotY      string
	plotTitle  string
	plotOutput string
	plotOpen   bool
)

var plotCmd = &cobra.Command{
	Use:   "plot [spreadsheet]",
	Short: "Render a chart of a spreadsheet",
	Long: `Draws the data as a PNG chart. With no type given the data is
analyzed and the most sensible chart is chosen: scatter for two numeric
columns, bar for numeric-by-category, histogram for a lone numeric one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := resolveTarget(args)
		if err != nil {
			return err
		}
		data, err := Store.Data(table)
		if err != nil {
			return err
		}

		result, err := chart.Render(data, chart.Options{
			Kind:       plotKind,
			XColumn:    plotX,
			YColumn:    plotY,
			Title:      plotTitle,
			OutputFile: plotOutput,
			PlotsDir:   viper.GetString("settings.plots_dir"),
		})
		if err != nil {
			return err
		}
		Console.Success(fmt.Sprintf("Created %s chart: %s", result.Kind, result.Path))

		if plotOpen {
			if err := (extproc.SystemOpener{}).Open(result.Path); err == nil {
				Console.Info("Plot opened in default viewer")
			}
		}
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotKind, "type", "t", "", "chart type: bar, line, scatter, pie, histogram")
	plotCmd.Flags().StringVarP(&plotX, "x", "x", "", "x-axis column")
	plotCmd.Flags().StringVarP(&plotY, "y", "y", "", "y-axis column")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "chart title")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "output file (default plots/<name>_<type>.png)")
	plotCmd.Flags().BoolVar(&plotOpen, "open", false, "open the chart in the default viewer")
	RootCmd.AddCommand(plotCmd)
}
