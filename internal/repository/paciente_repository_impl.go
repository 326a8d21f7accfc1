package repository

import (
	"context"
	"errors"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
)

type pacienteRepository struct{}

func NewPacienteRepository() domainRepo.PacienteRepository {
	return &pacienteRepository{}
}

func (r *pacienteRepository) Create(ctx context.Context, db *gorm.DB, paciente *entity.Paciente) error {
	return db.WithContext(ctx).Create(paciente).Error
}

func (r *pacienteRepository) FindByCPF(ctx context.Context, db *gorm.DB, cpf string) (*entity.Paciente, error) {
	var paciente entity.Paciente
	err := db.WithContext(ctx).Where("cpf_paciente = ?", cpf).First(&paciente).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Paciente{}).Count(&total).Error
	return total, err
}

type termoConsentimentoRepository struct{}

func NewTermoConsentimentoRepository() domainRepo.TermoConsentimentoRepository {
	return &termoConsentimentoRepository{}
}

func (r *termoConsentimentoRepository) Create(ctx context.Context, db *gorm.DB, termo *entity.TermoConsentimento) error {
	return db.WithContext(ctx).Create(termo).Error
}
