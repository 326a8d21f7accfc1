package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
)

type membershipRepository struct{}

func NewMembershipRepository() domainRepo.MembershipRepository {
	return &membershipRepository{}
}

func (r *membershipRepository) AddRole(ctx context.Context, db *gorm.DB, membership *entity.UserRole) error {
	return db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) DeleteRolesByUserID(ctx context.Context, db *gorm.DB, userID uint) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.UserRole{}).Error
}

func (r *membershipRepository) FindRolesByUserID(ctx context.Context, db *gorm.DB, userID uint) ([]entity.UserRole, error) {
	var rows []entity.UserRole
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("role_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *membershipRepository) AddUnidadeSaude(ctx context.Context, db *gorm.DB, membership *entity.UserUnidadeSaude) error {
	return db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) DeleteUnidadesSaudeByUserID(ctx context.Context, db *gorm.DB, userID uint) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.UserUnidadeSaude{}).Error
}

func (r *membershipRepository) FindUnidadesSaudeByUserID(ctx context.Context, db *gorm.DB, userID uint) ([]entity.UserUnidadeSaude, error) {
	var rows []entity.UserUnidadeSaude
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("unidade_saude_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
