package entity

import (
	"errors"
	"fmt"
)

// ErrCampoCondicional is returned when a conditional answer is filled while the
// question gating it was answered "no".
var ErrCampoCondicional = errors.New("conditional field set without its gating answer")

// ErrValorInvalido is returned when a scored answer is outside its scale.
var ErrValorInvalido = errors.New("value outside of the accepted scale")

// Answer value used by the "other, specify" follow-up questions.
const OpcaoOutro = "Outro"

func condicional(gate bool, value *string, campo string) error {
	if !gate && value != nil {
		return fmt.Errorf("%w: %s", ErrCampoCondicional, campo)
	}
	return nil
}

func isOutro(value *string) bool {
	return value != nil && *value == OpcaoOutro
}

// SaudeGeral is the general health questionnaire
type SaudeGeral struct {
	ID                        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	DoencasCronicas           bool    `gorm:"not null" json:"doencas_cronicas"`
	Hipertenso                bool    `gorm:"not null" json:"hipertenso"`
	Diabetes                  bool    `gorm:"not null" json:"diabetes"`
	Cardiopatia               bool    `gorm:"not null" json:"cardiopatia"`
	OutrasDoencas             *string `gorm:"type:varchar(255)" json:"outras_doencas"`
	DiagnosticoCancer         bool    `gorm:"not null" json:"diagnostico_cancer"`
	TipoCancer                *string `gorm:"type:varchar(255)" json:"tipo_cancer"`
	UsoMedicamentos           bool    `gorm:"not null" json:"uso_medicamentos"`
	Medicamentos              *string `gorm:"type:varchar(255)" json:"medicamentos"`
	PossuiAlergia             bool    `gorm:"not null" json:"possui_alergia"`
	Alergias                  *string `gorm:"type:varchar(255)" json:"alergias"`
	CirurgiasDermatologicas   bool    `gorm:"not null" json:"cirurgias_dermatologicas"`
	TipoProcedimento          *string `gorm:"type:varchar(255)" json:"tipo_procedimento"`
	PraticaAtividadeFisica    bool    `gorm:"not null" json:"pratica_atividade_fisica"`
	FrequenciaAtividadeFisica *string `gorm:"type:varchar(20)" json:"frequencia_atividade_fisica"`
}

func (SaudeGeral) TableName() string {
	return "saude_geral"
}

func (s *SaudeGeral) Validate() error {
	return errors.Join(
		condicional(s.DoencasCronicas, s.OutrasDoencas, "outras_doencas"),
		condicional(s.DiagnosticoCancer, s.TipoCancer, "tipo_cancer"),
		condicional(s.UsoMedicamentos, s.Medicamentos, "medicamentos"),
		condicional(s.PossuiAlergia, s.Alergias, "alergias"),
		condicional(s.CirurgiasDermatologicas, s.TipoProcedimento, "tipo_procedimento"),
		condicional(s.PraticaAtividadeFisica, s.FrequenciaAtividadeFisica, "frequencia_atividade_fisica"),
	)
}

// AvaliacaoFototipo scores sun sensitivity. Each answer has its own scale and
// the total maps to a Fitzpatrick phototype.
type AvaliacaoFototipo struct {
	ID                 uint `gorm:"primaryKey;autoIncrement" json:"id"`
	CorPele            int  `gorm:"not null" json:"cor_pele"`
	CorOlhos           int  `gorm:"not null" json:"cor_olhos"`
	CorCabelo          int  `gorm:"not null" json:"cor_cabelo"`
	QuantidadeSardas   int  `gorm:"not null" json:"quantidade_sardas"`
	ReacaoSol          int  `gorm:"not null" json:"reacao_sol"`
	Bronzeamento       int  `gorm:"not null" json:"bronzeamento"`
	SensibilidadeSolar int  `gorm:"not null" json:"sensibilidade_solar"`
}

func (AvaliacaoFototipo) TableName() string {
	return "avaliacoes_fototipo"
}

// Accepted answers for each phototype question.
var (
	EscalaCorPele            = []int{0, 2, 4, 8, 12, 16, 20}
	EscalaCorOlhos           = []int{0, 1, 2, 3, 4}
	EscalaCorCabelo          = []int{0, 1, 2, 3, 4}
	EscalaQuantidadeSardas   = []int{0, 1, 2, 3}
	EscalaReacaoSol          = []int{0, 2, 4, 6, 8}
	EscalaBronzeamento       = []int{0, 2, 4, 6}
	EscalaSensibilidadeSolar = []int{0, 1, 2, 3, 4}
)

func naEscala(value int, escala []int, campo string) error {
	for _, v := range escala {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("%w: %s=%d", ErrValorInvalido, campo, value)
}

func (a *AvaliacaoFototipo) Validate() error {
	return errors.Join(
		naEscala(a.CorPele, EscalaCorPele, "cor_pele"),
		naEscala(a.CorOlhos, EscalaCorOlhos, "cor_olhos"),
		naEscala(a.CorCabelo, EscalaCorCabelo, "cor_cabelo"),
		naEscala(a.QuantidadeSardas, EscalaQuantidadeSardas, "quantidade_sardas"),
		naEscala(a.ReacaoSol, EscalaReacaoSol, "reacao_sol"),
		naEscala(a.Bronzeamento, EscalaBronzeamento, "bronzeamento"),
		naEscala(a.SensibilidadeSolar, EscalaSensibilidadeSolar, "sensibilidade_solar"),
	)
}

// Pontuacao is the sum of every answer.
func (a *AvaliacaoFototipo) Pontuacao() int {
	return a.CorPele + a.CorOlhos + a.CorCabelo + a.QuantidadeSardas +
		a.ReacaoSol + a.Bronzeamento + a.SensibilidadeSolar
}

// Fototipo returns the Fitzpatrick classification (I to VI) for the score.
func (a *AvaliacaoFototipo) Fototipo() string {
	switch p := a.Pontuacao(); {
	case p <= 7:
		return "I"
	case p <= 16:
		return "II"
	case p <= 25:
		return "III"
	case p <= 30:
		return "IV"
	case p <= 40:
		return "V"
	default:
		return "VI"
	}
}

// HistoricoCancerPele is the family and personal skin-cancer history
type HistoricoCancerPele struct {
	ID                      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	HistoricoFamiliar       bool    `gorm:"not null" json:"historico_familiar"`
	GrauParentesco          *string `gorm:"type:varchar(20)" json:"grau_parentesco"`
	TipoCancerFamiliar      *string `gorm:"type:varchar(50)" json:"tipo_cancer_familiar"`
	TipoCancerFamiliarOutro *string `gorm:"type:varchar(255)" json:"tipo_cancer_familiar_outro"`
	DiagnosticoPessoal      bool    `gorm:"not null" json:"diagnostico_pessoal"`
	TipoCancerPessoal       *string `gorm:"type:varchar(50)" json:"tipo_cancer_pessoal"`
	TipoCancerPessoalOutro  *string `gorm:"type:varchar(255)" json:"tipo_cancer_pessoal_outro"`
	LesoesPrecancerigenas   bool    `gorm:"not null" json:"lesoes_precancerigenas"`
	TratamentoLesoes        bool    `gorm:"not null" json:"tratamento_lesoes"`
	TipoTratamento          *string `gorm:"type:varchar(50)" json:"tipo_tratamento"`
	TipoTratamentoOutro     *string `gorm:"type:varchar(255)" json:"tipo_tratamento_outro"`
}

func (HistoricoCancerPele) TableName() string {
	return "historicos_cancer_pele"
}

func (h *HistoricoCancerPele) Validate() error {
	return errors.Join(
		condicional(h.HistoricoFamiliar, h.GrauParentesco, "grau_parentesco"),
		condicional(h.HistoricoFamiliar, h.TipoCancerFamiliar, "tipo_cancer_familiar"),
		condicional(isOutro(h.TipoCancerFamiliar), h.TipoCancerFamiliarOutro, "tipo_cancer_familiar_outro"),
		condicional(h.DiagnosticoPessoal, h.TipoCancerPessoal, "tipo_cancer_pessoal"),
		condicional(isOutro(h.TipoCancerPessoal), h.TipoCancerPessoalOutro, "tipo_cancer_pessoal_outro"),
		condicional(h.TratamentoLesoes, h.TipoTratamento, "tipo_tratamento"),
		condicional(isOutro(h.TipoTratamento), h.TipoTratamentoOutro, "tipo_tratamento_outro"),
	)
}

// FatoresRiscoProtecao covers sun exposure and protection habits
type FatoresRiscoProtecao struct {
	ID                             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ExposicaoSolarProlongada       bool    `gorm:"not null" json:"exposicao_solar_prolongada"`
	FrequenciaExposicaoSolar       *string `gorm:"type:varchar(50)" json:"frequencia_exposicao_solar"`
	QueimadurasGraves              bool    `gorm:"not null" json:"queimaduras_graves"`
	QuantidadeQueimaduras          *string `gorm:"type:varchar(20)" json:"quantidade_queimaduras"`
	UsoProtetorSolar               bool    `gorm:"not null" json:"uso_protetor_solar"`
	FatorProtecaoSolar             *string `gorm:"type:varchar(20)" json:"fator_protecao_solar"`
	UsoChapeuRoupaProtecao         bool    `gorm:"not null" json:"uso_chapeu_roupa_protecao"`
	BronzeamentoArtificial         bool    `gorm:"not null" json:"bronzeamento_artificial"`
	CheckupsDermatologicos         bool    `gorm:"not null" json:"checkups_dermatologicos"`
	FrequenciaCheckups             *string `gorm:"type:varchar(50)" json:"frequencia_checkups"`
	FrequenciaCheckupsOutro        *string `gorm:"type:varchar(255)" json:"frequencia_checkups_outro"`
	ParticipacaoCampanhasPrevencao bool    `gorm:"not null" json:"participacao_campanhas_prevencao"`
}

func (FatoresRiscoProtecao) TableName() string {
	return "fatores_risco_protecao"
}

func (f *FatoresRiscoProtecao) Validate() error {
	return errors.Join(
		condicional(f.ExposicaoSolarProlongada, f.FrequenciaExposicaoSolar, "frequencia_exposicao_solar"),
		condicional(f.QueimadurasGraves, f.QuantidadeQueimaduras, "quantidade_queimaduras"),
		condicional(f.UsoProtetorSolar, f.FatorProtecaoSolar, "fator_protecao_solar"),
		condicional(f.CheckupsDermatologicos, f.FrequenciaCheckups, "frequencia_checkups"),
		condicional(isOutro(f.FrequenciaCheckups), f.FrequenciaCheckupsOutro, "frequencia_checkups_outro"),
	)
}

// InvestigacaoLesoesSuspeitas records recent changes in moles and spots
type InvestigacaoLesoesSuspeitas struct {
	ID                    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	MudancaPintasManchas  bool    `gorm:"not null" json:"mudanca_pintas_manchas"`
	SintomasLesoes        bool    `gorm:"not null" json:"sintomas_lesoes"`
	TempoAlteracoes       *string `gorm:"type:varchar(30)" json:"tempo_alteracoes"`
	CaracteristicasLesoes bool    `gorm:"not null" json:"caracteristicas_lesoes"`
	ConsultaMedica        bool    `gorm:"not null" json:"consulta_medica"`
	DiagnosticoLesoes     *string `gorm:"type:varchar(255)" json:"diagnostico_lesoes"`
}

func (InvestigacaoLesoesSuspeitas) TableName() string {
	return "investigacoes_lesoes_suspeitas"
}

func (i *InvestigacaoLesoesSuspeitas) Validate() error {
	return errors.Join(
		condicional(i.MudancaPintasManchas || i.SintomasLesoes, i.TempoAlteracoes, "tempo_alteracoes"),
		condicional(i.ConsultaMedica, i.DiagnosticoLesoes, "diagnostico_lesoes"),
	)
}
