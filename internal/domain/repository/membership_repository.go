package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"

	"gorm.io/gorm"
)

// MembershipRepository manages the user_roles and user_unidades_saude rows.
type MembershipRepository interface {
	AddRole(ctx context.Context, db *gorm.DB, membership *entity.UserRole) error
	DeleteRolesByUserID(ctx context.Context, db *gorm.DB, userID uint) error
	FindRolesByUserID(ctx context.Context, db *gorm.DB, userID uint) ([]entity.UserRole, error)
	AddUnidadeSaude(ctx context.Context, db *gorm.DB, membership *entity.UserUnidadeSaude) error
	DeleteUnidadesSaudeByUserID(ctx context.Context, db *gorm.DB, userID uint) error
	FindUnidadesSaudeByUserID(ctx context.Context, db *gorm.DB, userID uint) ([]entity.UserUnidadeSaude, error)
}
