package main

import (
	"fmt"

	"dermatriagem-api/cmd/bootstrap"
	"dermatriagem-api/config"
	"dermatriagem-api/internal/infrastructure/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(database.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(func(db *gorm.DB) error {
			return database.MigrateDown(db, migrateSteps)
		})
	},
}

// NewMigrateCommand returns the migrate command with its up and down subcommands.
func NewMigrateCommand() *cobra.Command {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back, 0 rolls back all")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	return migrateCmd
}

func withDatabase(fn func(db *gorm.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	bootstrap.SetupLogger(cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB, false)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(db)
}
