package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"
	domainRepo "dermatriagem-api/internal/domain/repository"

	"gorm.io/gorm"
)

// questionarioRepository rejects answers that break their own gating rules
// before they reach the database.
type questionarioRepository struct{}

func NewQuestionarioRepository() domainRepo.QuestionarioRepository {
	return &questionarioRepository{}
}

func (r *questionarioRepository) CreateSaudeGeral(ctx context.Context, db *gorm.DB, q *entity.SaudeGeral) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(q).Error
}

func (r *questionarioRepository) CreateAvaliacaoFototipo(ctx context.Context, db *gorm.DB, q *entity.AvaliacaoFototipo) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(q).Error
}

func (r *questionarioRepository) CreateHistoricoCancerPele(ctx context.Context, db *gorm.DB, q *entity.HistoricoCancerPele) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(q).Error
}

func (r *questionarioRepository) CreateFatoresRiscoProtecao(ctx context.Context, db *gorm.DB, q *entity.FatoresRiscoProtecao) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(q).Error
}

func (r *questionarioRepository) CreateInvestigacaoLesoesSuspeitas(ctx context.Context, db *gorm.DB, q *entity.InvestigacaoLesoesSuspeitas) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(q).Error
}
