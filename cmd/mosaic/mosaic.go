// Package mosaic implements the mosaic subcommand.
package mosaic

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildsight/camtrap-go/internal/conf"
	"github.com/wildsight/camtrap-go/internal/convert"
)

// Command creates the mosaic command for rendering a CSV of image paths as
// an HTML grid.
func Command(settings *conf.Settings) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "mosaic [input.csv]",
		Short: "Render a CSV of image paths as an HTML mosaic",
		Long: `Render the image paths listed in a CSV file (optionally gzipped) as a
browsable HTML grid. Without -o the output file takes the CSV's name with
an .html extension, next to the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert.RunMosaic(settings, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "HTML output file")
	cmd.Flags().StringVar(&settings.Mosaic.Column, "column",
		viper.GetString("mosaic.column"), "CSV column holding the image paths")
	cmd.Flags().BoolVar(&settings.Mosaic.Lightbox, "lightbox",
		viper.GetBool("mosaic.lightbox"), "Enable the click-to-enlarge overlay")

	return cmd
}
