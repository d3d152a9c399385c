package main

import (
	"fmt"
	"strconv"

	"studioslot/internal/config"
	"studioslot/internal/db"
	"studioslot/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(cfg *config.Config, database *sqlx.DB) error {
				if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
					return err
				}
				logger.Info("Migrations applied")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the last migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			return withDatabase(func(cfg *config.Config, database *sqlx.DB) error {
				if err := db.RollbackMigrations(database, cfg.MigrationsDir, steps); err != nil {
					return err
				}
				logger.Info("Migrations rolled back", "steps", steps)
				return nil
			})
		},
	})

	return cmd
}

func withDatabase(fn func(cfg *config.Config, database *sqlx.DB) error) error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(cfg, database)
}
