package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type localLesaoRepository struct{}

func NewLocalLesaoRepository() domainRepo.LocalLesaoRepository {
	return &localLesaoRepository{}
}

// CreateBatch inserts the catalog, skipping names that already exist.
func (r *localLesaoRepository) CreateBatch(ctx context.Context, db *gorm.DB, locais []entity.LocalLesao) error {
	if len(locais) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "nome"}}, DoNothing: true}).
		Create(&locais).Error
}

func (r *localLesaoRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.LocalLesao, error) {
	var locais []entity.LocalLesao
	if err := db.WithContext(ctx).Order("id ASC").Find(&locais).Error; err != nil {
		return nil, err
	}
	return locais, nil
}

type registroLesoesRepository struct{}

func NewRegistroLesoesRepository() domainRepo.RegistroLesoesRepository {
	return &registroLesoesRepository{}
}

func (r *registroLesoesRepository) Create(ctx context.Context, db *gorm.DB, registro *entity.RegistroLesoes) error {
	return db.WithContext(ctx).Omit("LocalLesao", "Imagens").Create(registro).Error
}

func (r *registroLesoesRepository) CreateImagem(ctx context.Context, db *gorm.DB, imagem *entity.RegistroLesoesImagens) error {
	return db.WithContext(ctx).Create(imagem).Error
}

func (r *registroLesoesRepository) FindByAtendimentoID(ctx context.Context, db *gorm.DB, atendimentoID uint) ([]entity.RegistroLesoes, error) {
	var registros []entity.RegistroLesoes
	err := db.WithContext(ctx).
		Preload("LocalLesao").
		Preload("Imagens").
		Where("atendimento_id = ?", atendimentoID).
		Order("id ASC").
		Find(&registros).Error
	if err != nil {
		return nil, err
	}
	return registros, nil
}
