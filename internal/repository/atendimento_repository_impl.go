package repository

import (
	"context"
	"errors"
	"fmt"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
)

type atendimentoRepository struct{}

func NewAtendimentoRepository() domainRepo.AtendimentoRepository {
	return &atendimentoRepository{}
}

func (r *atendimentoRepository) Create(ctx context.Context, db *gorm.DB, atendimento *entity.Atendimento) error {
	if !atendimento.HasDependencies() {
		return fmt.Errorf("atendimento is missing a mandatory reference")
	}
	return db.WithContext(ctx).
		Omit("Paciente", "User", "UnidadeSaude", "TermoConsentimento", "SaudeGeral",
			"AvaliacaoFototipo", "HistoricoCancerPele", "FatoresRiscoProtecao",
			"InvestigacaoLesoesSuspeitas", "RegistrosLesoes").
		Create(atendimento).Error
}

func (r *atendimentoRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Atendimento, error) {
	var atendimento entity.Atendimento
	err := db.WithContext(ctx).
		Preload("Paciente").
		Preload("UnidadeSaude").
		Preload("TermoConsentimento").
		Preload("SaudeGeral").
		Preload("AvaliacaoFototipo").
		Preload("HistoricoCancerPele").
		Preload("FatoresRiscoProtecao").
		Preload("InvestigacaoLesoesSuspeitas").
		Preload("RegistrosLesoes.LocalLesao").
		Preload("RegistrosLesoes.Imagens").
		Where("id = ?", id).
		First(&atendimento).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &atendimento, nil
}

func (r *atendimentoRepository) FindByPacienteID(ctx context.Context, db *gorm.DB, pacienteID uint) ([]entity.Atendimento, error) {
	var atendimentos []entity.Atendimento
	err := db.WithContext(ctx).
		Where("paciente_id = ?", pacienteID).
		Order("id ASC").
		Find(&atendimentos).Error
	if err != nil {
		return nil, err
	}
	return atendimentos, nil
}
