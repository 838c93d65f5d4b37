package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potools/pocheck/internal/config"
	"github.com/potools/pocheck/internal/database"
)

func newMigrateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	command.AddCommand(newMigrateUpCommand())

	return command
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}
