package conf

import "github.com/spf13/viper"

// setDefaults registers every configuration key with its default value.
func setDefaults() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.log.enabled", false)
	viper.SetDefault("main.log.path", "camtrap.log")

	viper.SetDefault("output.directory", ".")
	viper.SetDefault("output.sqlite.path", "predictions.db")

	viper.SetDefault("mosaic.column", "filepath")
	viper.SetDefault("mosaic.lightbox", false)
}
