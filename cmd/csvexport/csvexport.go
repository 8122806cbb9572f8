// Package csvexport implements the csv subcommand.
package csvexport

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/convert"
)

// Command creates the csv command for flattening prediction JSON into the
// three CSV outputs.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv [input.json ...]",
		Short: "Flatten prediction JSON files into CSV outputs",
		Long: `Flatten one or more prediction JSON files into three CSV files in the
output directory: predictions_summary.csv, classifications.csv and
detections.csv.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert.RunCSV(settings, args)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the csv command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.Directory, "output", "o",
		viper.GetString("output.directory"), "Directory for the CSV output files")
}
