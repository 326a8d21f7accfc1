package entity

import "time"

// Atendimento is a screening visit. Every reference is mandatory, so the
// questionnaires and the consent form must be persisted before the visit.
type Atendimento struct {
	ID                            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID                    uint      `gorm:"not null;index" json:"paciente_id"`
	UserID                        uint      `gorm:"not null;index" json:"user_id"`
	UnidadeSaudeID                uint      `gorm:"not null;index" json:"unidade_saude_id"`
	TermoConsentimentoID          uint      `gorm:"not null" json:"termo_consentimento_id"`
	SaudeGeralID                  uint      `gorm:"not null" json:"saude_geral_id"`
	AvaliacaoFototipoID           uint      `gorm:"not null" json:"avaliacao_fototipo_id"`
	HistoricoCancerPeleID         uint      `gorm:"not null" json:"historico_cancer_pele_id"`
	FatoresRiscoProtecaoID        uint      `gorm:"not null" json:"fatores_risco_protecao_id"`
	InvestigacaoLesoesSuspeitasID uint      `gorm:"not null" json:"investigacao_lesoes_suspeitas_id"`
	CreatedAt                     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Paciente                    *Paciente                    `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
	User                        *User                        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	UnidadeSaude                *UnidadeSaude                `gorm:"foreignKey:UnidadeSaudeID" json:"unidade_saude,omitempty"`
	TermoConsentimento          *TermoConsentimento          `gorm:"foreignKey:TermoConsentimentoID" json:"termo_consentimento,omitempty"`
	SaudeGeral                  *SaudeGeral                  `gorm:"foreignKey:SaudeGeralID" json:"saude_geral,omitempty"`
	AvaliacaoFototipo           *AvaliacaoFototipo           `gorm:"foreignKey:AvaliacaoFototipoID" json:"avaliacao_fototipo,omitempty"`
	HistoricoCancerPele         *HistoricoCancerPele         `gorm:"foreignKey:HistoricoCancerPeleID" json:"historico_cancer_pele,omitempty"`
	FatoresRiscoProtecao        *FatoresRiscoProtecao        `gorm:"foreignKey:FatoresRiscoProtecaoID" json:"fatores_risco_protecao,omitempty"`
	InvestigacaoLesoesSuspeitas *InvestigacaoLesoesSuspeitas `gorm:"foreignKey:InvestigacaoLesoesSuspeitasID" json:"investigacao_lesoes_suspeitas,omitempty"`
	RegistrosLesoes             []RegistroLesoes             `gorm:"foreignKey:AtendimentoID" json:"registros_lesoes,omitempty"`
}

func (Atendimento) TableName() string {
	return "atendimentos"
}

// HasDependencies reports whether every mandatory reference has been assigned.
func (a *Atendimento) HasDependencies() bool {
	return a.PacienteID != 0 &&
		a.UserID != 0 &&
		a.UnidadeSaudeID != 0 &&
		a.TermoConsentimentoID != 0 &&
		a.SaudeGeralID != 0 &&
		a.AvaliacaoFototipoID != 0 &&
		a.HistoricoCancerPeleID != 0 &&
		a.FatoresRiscoProtecaoID != 0 &&
		a.InvestigacaoLesoesSuspeitasID != 0
}
