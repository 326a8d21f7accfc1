package entity

// UnidadeSaude represents a health unit where screenings happen
type UnidadeSaude struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NomeUnidadeSaude   string `gorm:"type:varchar(150);not null" json:"nome_unidade_saude"`
	NomeLocalizacao    string `gorm:"type:varchar(300)" json:"nome_localizacao"`
	CodigoUnidadeSaude string `gorm:"type:varchar(20);index" json:"codigo_unidade_saude"`
	CidadeUnidadeSaude string `gorm:"type:varchar(100)" json:"cidade_unidade_saude"`
	FlAtivo            bool   `gorm:"not null" json:"fl_ativo"`

	// Relationships
	Atendimentos []Atendimento `gorm:"foreignKey:UnidadeSaudeID" json:"atendimentos,omitempty"`
}

func (UnidadeSaude) TableName() string {
	return "unidades_saude"
}
