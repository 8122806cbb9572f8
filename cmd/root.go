package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildsight/camtrap-go/cmd/csvexport"
	"github.com/wildsight/camtrap-go/cmd/mosaic"
	"github.com/wildsight/camtrap-go/cmd/sqlite"
	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "camtrap",
		Short: "Camera-trap prediction converter",
		Long:  "Converts camera-trap prediction JSON into CSV files or a SQLite database, and renders CSV image lists as an HTML mosaic.",
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		csvexport.Command(settings),
		sqlite.Command(settings),
		mosaic.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Flags have been parsed at this point; logging can honor --debug.
		logging.Init(settings)
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&settings.Main.Log.Enabled, "logfile", viper.GetBool("main.log.enabled"), "Also write logs to a file")
	rootCmd.PersistentFlags().StringVar(&settings.Main.Log.Path, "logfile-path", viper.GetString("main.log.path"), "Log file path")
}
