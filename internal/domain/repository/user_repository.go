package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.User, error)
	FindByCPF(ctx context.Context, db *gorm.DB, cpf string) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByCPFOrEmail(ctx context.Context, db *gorm.DB, cpf, email string) (*entity.User, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uint, flAtivo bool, updatedBy uint) error
}
