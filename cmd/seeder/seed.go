package main

import (
	"context"
	"fmt"

	"dermatriagem-api/cmd/bootstrap"
	"dermatriagem-api/config"
	"dermatriagem-api/internal/infrastructure/database"
	"dermatriagem-api/internal/infrastructure/imagecatalog"
	"dermatriagem-api/internal/infrastructure/storage"
	"dermatriagem-api/internal/seeder"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedOpts struct {
	pacientes int
	randomKey uint64
	migrate   bool
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demonstration data",
	Long: `Creates the fixed health units, roles and staff accounts, then the
requested number of synthetic patients. Lesion images come from the public
image catalog and are uploaded to the object store; placeholder paths are
recorded whenever the catalog or the store is unavailable.

Running seed twice against the same database fails once it reaches the
staff accounts.`,
	RunE: runSeed,
}

// NewSeedCommand returns the seed command.
func NewSeedCommand() *cobra.Command {
	seedCmd.Flags().IntVar(&seedOpts.pacientes, "pacientes", 0, "number of patients to generate (default SEED_PACIENTES)")
	seedCmd.Flags().Uint64Var(&seedOpts.randomKey, "seed", 0, "random key for reproducible data (default SEED_RANDOM_KEY, 0 is random)")
	seedCmd.Flags().BoolVar(&seedOpts.migrate, "migrate", true, "apply pending migrations before seeding")
	return seedCmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := bootstrap.SetupLogger(cfg.App.LogLevel)

	if cmd.Flags().Changed("pacientes") {
		cfg.Seed.Pacientes = seedOpts.pacientes
	}
	randomKey := cfg.Seed.DefaultRandomKey
	if cmd.Flags().Changed("seed") {
		randomKey = seedOpts.randomKey
	}

	db, err := database.NewPostgresConnection(cfg.DB, false)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if seedOpts.migrate {
		if err := database.MigrateUp(db); err != nil {
			return err
		}
	}

	ctx := cmd.Context()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Seed.HTTPTimeout)
	store := storage.Open(connectCtx, cfg.Storage, log)
	cancel()

	catalog := imagecatalog.NewClient(cfg.Seed.ImageCatalogURL, cfg.Seed.HTTPTimeout, log)

	log.WithFields(logrus.Fields{
		"pacientes":  cfg.Seed.Pacientes,
		"random_key": randomKey,
	}).Info("Seeding database")

	report, err := seeder.New(db, log, catalog, store, cfg.Seed, randomKey).Run(ctx)
	if report != nil {
		log.WithFields(logrus.Fields{
			"unidades_saude":   report.UnidadesSaude,
			"roles":            report.Roles,
			"users":            report.Users,
			"locais_lesao":     report.LocaisLesao,
			"pacientes":        report.Pacientes,
			"atendimentos":     report.Atendimentos,
			"registros_lesoes": report.RegistrosLesoes,
			"imagens":          report.Imagens,
			"fallbacks":        report.Fallbacks,
			"fototipos":        report.Fototipos,
		}).Info("Seed report")
	}
	if err != nil {
		return fmt.Errorf("seed aborted: %w", err)
	}
	return nil
}
