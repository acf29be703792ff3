// Package cmd holds the eventapi command line: the API server and the
// database migration commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"event-management-api/internal/config"
)

var (
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "eventapi",
		Short: "Event management API server",
		Long: `eventapi serves the event management JSON API: accounts and sessions,
events with creator-only edits, vendors, attendees and schedule items.

Configuration comes from the environment, optionally seeded from a .env file.`,
		SilenceUsage: true,
		// serve is the default
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console); overrides LOG_FORMAT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig applies the persistent flags on top of the environment.
func loadConfig() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, config.NewLogger(cfg.Logging), nil
}
