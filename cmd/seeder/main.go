package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Database maintenance for the dermatriagem API",
	Long: `Applies schema migrations and fills the database with demonstration
data: health units, roles, staff accounts and synthetic patients with
questionnaires, consultations and lesion photographs.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(NewSeedCommand())
	rootCmd.AddCommand(NewMigrateCommand())

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
