package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sunangle/millennium-calendar-go/internal/config"
)

var (
	// ErrInvalidArgument is returned for a command argument that cannot be parsed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingDSN is returned by verify when no PostgreSQL DSN is configured.
	ErrMissingDSN = errors.New("postgres.dsn is not set")

	// ErrVerificationFailed is returned by verify when the server disagrees on at least one day.
	ErrVerificationFailed = errors.New("verification found mismatches")
)

var rootCmd = &cobra.Command{
	Use:   "mdncal",
	Short: "Millennium day number calendar tool",
	Long: "mdncal converts proleptic Gregorian dates to and from millennium day numbers " +
		"(days since 2000-03-01), converts UTC to TAI, and cross-checks the day numbering against PostgreSQL.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .mdncal.toml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.StringP("output", "o", "", "output format: text or json")
	flags.String("leap-seconds-file", "", "TOML leap second table replacing the built-in one")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("leap_seconds.file", flags.Lookup("leap-seconds-file"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")

	if err := config.Init(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and builds the logger writing to the command's stderr.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logger, nil
}

// newLogger returns a slog logger in the configured format and level.
func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Output == config.OutputJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
