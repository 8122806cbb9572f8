// Package sqlite implements the sqlite subcommand.
package sqlite

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/convert"
)

// Command creates the sqlite command for loading prediction JSON into a
// SQLite database.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlite [input.json ...]",
		Short: "Load prediction JSON files into a SQLite database",
		Long: `Load one or more prediction JSON files into a SQLite database with
linked images, classifications and detections tables. Each input file is
committed as one batch; a bad file is skipped without rolling back files
already loaded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert.RunSQLite(settings, args)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the sqlite command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVar(&settings.Output.SQLite.Path, "db",
		viper.GetString("output.sqlite.path"), "SQLite database file")
}
