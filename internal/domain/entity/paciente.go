package entity

import "time"

// Paciente holds the demographic record of a screened patient
type Paciente struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NomePaciente     string    `gorm:"type:varchar(100);not null" json:"nome_paciente"`
	DataNascimento   time.Time `gorm:"type:date;not null" json:"data_nascimento"`
	Sexo             string    `gorm:"type:varchar(2);not null" json:"sexo"`
	SexoOutro        string    `gorm:"type:varchar(50)" json:"sexo_outro,omitempty"`
	CPFPaciente      string    `gorm:"column:cpf_paciente;type:varchar(11);uniqueIndex;not null" json:"cpf_paciente"`
	NumCartaoSUS     string    `gorm:"column:num_cartao_sus;type:varchar(15)" json:"num_cartao_sus"`
	EnderecoPaciente string    `gorm:"type:varchar(300)" json:"endereco_paciente"`
	TelefonePaciente string    `gorm:"type:varchar(11)" json:"telefone_paciente"`
	EmailPaciente    string    `gorm:"type:varchar(100)" json:"email_paciente"`
	AutorizaPesquisa bool      `gorm:"not null" json:"autoriza_pesquisa"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Atendimentos []Atendimento `gorm:"foreignKey:PacienteID" json:"atendimentos,omitempty"`
}

func (Paciente) TableName() string {
	return "pacientes"
}

// Sexo constants
const (
	SexoMasculino    = "M"
	SexoFeminino     = "F"
	SexoNaoBinario   = "NB"
	SexoNaoResponder = "NR"
	SexoOutro        = "O"
)

// SexoValues lists every accepted value of Paciente.Sexo.
var SexoValues = []string{SexoMasculino, SexoFeminino, SexoNaoBinario, SexoNaoResponder, SexoOutro}
