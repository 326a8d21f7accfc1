package repository

import (
	"context"
	"errors"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
)

type unidadeSaudeRepository struct{}

func NewUnidadeSaudeRepository() domainRepo.UnidadeSaudeRepository {
	return &unidadeSaudeRepository{}
}

func (r *unidadeSaudeRepository) Create(ctx context.Context, db *gorm.DB, unidade *entity.UnidadeSaude) error {
	return db.WithContext(ctx).Create(unidade).Error
}

func (r *unidadeSaudeRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.UnidadeSaude, error) {
	var unidade entity.UnidadeSaude
	err := db.WithContext(ctx).Where("id = ?", id).First(&unidade).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unidade, nil
}

func (r *unidadeSaudeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.UnidadeSaude, error) {
	var unidades []entity.UnidadeSaude
	if err := db.WithContext(ctx).Order("id ASC").Find(&unidades).Error; err != nil {
		return nil, err
	}
	return unidades, nil
}
