package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UnidadeSaudeRepository interface {
	Create(ctx context.Context, db *gorm.DB, unidade *entity.UnidadeSaude) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.UnidadeSaude, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.UnidadeSaude, error)
}
