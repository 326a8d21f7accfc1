package repository

import (
	"context"

	"dermatriagem-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PacienteRepository interface {
	Create(ctx context.Context, db *gorm.DB, paciente *entity.Paciente) error
	FindByCPF(ctx context.Context, db *gorm.DB, cpf string) (*entity.Paciente, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type TermoConsentimentoRepository interface {
	Create(ctx context.Context, db *gorm.DB, termo *entity.TermoConsentimento) error
}

// QuestionarioRepository persists the five per-visit questionnaires.
type QuestionarioRepository interface {
	CreateSaudeGeral(ctx context.Context, db *gorm.DB, q *entity.SaudeGeral) error
	CreateAvaliacaoFototipo(ctx context.Context, db *gorm.DB, q *entity.AvaliacaoFototipo) error
	CreateHistoricoCancerPele(ctx context.Context, db *gorm.DB, q *entity.HistoricoCancerPele) error
	CreateFatoresRiscoProtecao(ctx context.Context, db *gorm.DB, q *entity.FatoresRiscoProtecao) error
	CreateInvestigacaoLesoesSuspeitas(ctx context.Context, db *gorm.DB, q *entity.InvestigacaoLesoesSuspeitas) error
}

type AtendimentoRepository interface {
	Create(ctx context.Context, db *gorm.DB, atendimento *entity.Atendimento) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Atendimento, error)
	FindByPacienteID(ctx context.Context, db *gorm.DB, pacienteID uint) ([]entity.Atendimento, error)
}

type LocalLesaoRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, locais []entity.LocalLesao) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.LocalLesao, error)
}

type RegistroLesoesRepository interface {
	Create(ctx context.Context, db *gorm.DB, registro *entity.RegistroLesoes) error
	CreateImagem(ctx context.Context, db *gorm.DB, imagem *entity.RegistroLesoesImagens) error
	FindByAtendimentoID(ctx context.Context, db *gorm.DB, atendimentoID uint) ([]entity.RegistroLesoes, error)
}
