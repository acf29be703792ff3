package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"event-management-api/internal/config"
	"event-management-api/internal/store/postgres"
)

var downSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.Driver == config.DriverSQLite {
			st, err := openStore(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			logger.Info().Str("dsn", cfg.Database.URL).Msg("sqlite schema ready")
			return st.Close()
		}
		if err := postgres.MigrateUp(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations (postgres only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return errors.New("migrate down is only supported for postgres")
		}
		if err := postgres.MigrateDown(cfg.Database.URL, downSteps); err != nil {
			return err
		}
		logger.Info().Int("steps", downSteps).Msg("migrations rolled back")
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
