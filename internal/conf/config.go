// Package conf loads the application settings from defaults, an optional
// camtrap.yaml file in the working directory, and CAMTRAP_* environment
// variables, in that order of precedence.
package conf

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds every user-tunable value. Command-line flags are bound on
// top of these in cmd/.
type Settings struct {
	Debug bool // enable debug logging

	Main struct {
		Log LogSettings
	}

	Output OutputSettings
	Mosaic MosaicSettings
}

// LogSettings controls the optional log file.
type LogSettings struct {
	Enabled bool   // true to write a log file in addition to stderr
	Path    string // log file path
}

// OutputSettings locates the conversion outputs.
type OutputSettings struct {
	Directory string // directory for the CSV outputs

	SQLite struct {
		Path string // SQLite database file path
	}
}

// MosaicSettings holds the mosaic renderer defaults.
type MosaicSettings struct {
	Column   string // CSV column holding image paths
	Lightbox bool   // render the click-to-enlarge overlay
}

// Load initializes viper and unmarshals the configuration into a Settings
// struct. A missing config file is fine; defaults and environment cover it.
func Load() (*Settings, error) {
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}
	return settings, nil
}

// initViper initializes viper with default values and reads the
// configuration file when one exists.
func initViper() error {
	viper.SetConfigName("camtrap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("camtrap")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}
