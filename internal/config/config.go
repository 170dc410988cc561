package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/sunangle/millennium-calendar-go/internal/adapters"
)

const (
	configName = ".mdncal"
	configType = "toml"
	envPrefix  = "MDNCAL"

	// OutputText prints results as plain lines.
	OutputText = "text"
	// OutputJSON prints results as indented JSON documents.
	OutputJSON = "json"
)

var (
	// ErrInvalidLogLevel is returned for a log level slog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidOutput is returned for an output format other than text or json.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidAdapter is returned for an unknown PostgreSQL adapter name.
	ErrInvalidAdapter = errors.New("invalid postgres adapter")

	// ErrWatchWithoutFile is returned when leap_seconds.watch is set without leap_seconds.file.
	ErrWatchWithoutFile = errors.New("leap_seconds.watch requires leap_seconds.file")
)

// PostgresConfig holds the connection used by the verify command.
type PostgresConfig struct {
	DSN     string `mapstructure:"dsn"`
	Adapter string `mapstructure:"adapter"`
}

// LeapSecondsConfig selects the leap second table.
type LeapSecondsConfig struct {
	File  string `mapstructure:"file"`
	Watch bool   `mapstructure:"watch"`
}

// Config holds all runtime configuration for mdncal.
// Values are populated from .mdncal.toml, MDNCAL_* env vars, and CLI flags.
type Config struct {
	LogLevel    string            `mapstructure:"log_level"`
	Output      string            `mapstructure:"output"`
	Postgres    PostgresConfig    `mapstructure:"postgres"`
	LeapSeconds LeapSecondsConfig `mapstructure:"leap_seconds"`
}

// Init points viper at the config file and the environment.
// An empty cfgFile searches for .mdncal.toml in the working and home directories.
// A missing config file is not an error; a broken one is.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType(configType)
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("output", OutputText)
	viper.SetDefault("postgres.dsn", "")
	viper.SetDefault("postgres.adapter", adapters.NamePGXPool)
	viper.SetDefault("leap_seconds.file", "")
	viper.SetDefault("leap_seconds.watch", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}

	if !slices.Contains([]string{adapters.NamePGXPool, adapters.NameSQLDB, adapters.NameSQLXDB}, c.Postgres.Adapter) {
		return fmt.Errorf("%w: %q", ErrInvalidAdapter, c.Postgres.Adapter)
	}

	if c.LeapSeconds.Watch && c.LeapSeconds.File == "" {
		return ErrWatchWithoutFile
	}

	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}
