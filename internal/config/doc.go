// Package config loads mdncal's settings from .mdncal.toml, MDNCAL_* environment variables
// and command line flags through viper.
package config
