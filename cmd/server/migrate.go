package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hagni1/jurney/internal/config"
	"github.com/Hagni1/jurney/internal/logging"
	"github.com/Hagni1/jurney/internal/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending combat archive migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	if cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is not configured")
	}

	return postgres.Migrate(cmd.Context(), cfg.Postgres.DSN)
}
