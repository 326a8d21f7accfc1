package repository

import (
	"context"
	"errors"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	// Associations are written through MembershipRepository.
	return db.WithContext(ctx).Omit("Roles", "UnidadesSaude").Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) FindByCPF(ctx context.Context, db *gorm.DB, cpf string) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("cpf = ?", cpf))
}

func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) FindByCPFOrEmail(ctx context.Context, db *gorm.DB, cpf, email string) (*entity.User, error) {
	return r.findOne(db.WithContext(ctx).Where("cpf = ? OR email = ?", cpf, email))
}

func (r *userRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).
		Preload("Roles").
		Preload("UnidadesSaude").
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uint, flAtivo bool, updatedBy uint) error {
	result := db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"fl_ativo":               flAtivo,
			"id_usuario_atualizacao": updatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) findOne(query *gorm.DB) (*entity.User, error) {
	var user entity.User
	err := query.
		Preload("Roles").
		Preload("UnidadesSaude").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
