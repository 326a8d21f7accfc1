package database

import (
	"fmt"

	"dermatriagem-api/config"
	"dermatriagem-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig, development bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)

	logLevel := logger.Warn
	if development {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := SetupJoinTables(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// SetupJoinTables registers the explicit association entities behind the
// many2many relations of User.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entity.User{}, "Roles", &entity.UserRole{}); err != nil {
		return fmt.Errorf("failed to setup user_roles join table: %w", err)
	}
	if err := db.SetupJoinTable(&entity.User{}, "UnidadesSaude", &entity.UserUnidadeSaude{}); err != nil {
		return fmt.Errorf("failed to setup user_unidades_saude join table: %w", err)
	}
	return nil
}

// Models lists every persisted entity, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.UnidadeSaude{},
		&entity.Role{},
		&entity.User{},
		&entity.UserRole{},
		&entity.UserUnidadeSaude{},
		&entity.Paciente{},
		&entity.TermoConsentimento{},
		&entity.SaudeGeral{},
		&entity.AvaliacaoFototipo{},
		&entity.HistoricoCancerPele{},
		&entity.FatoresRiscoProtecao{},
		&entity.InvestigacaoLesoesSuspeitas{},
		&entity.Atendimento{},
		&entity.LocalLesao{},
		&entity.RegistroLesoes{},
		&entity.RegistroLesoesImagens{},
		&entity.AuditLog{},
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
