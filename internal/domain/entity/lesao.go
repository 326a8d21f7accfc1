package entity

import "time"

// LocalLesao is an entry of the fixed body-location catalog
type LocalLesao struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome string `gorm:"type:varchar(50);uniqueIndex;not null" json:"nome"`
}

func (LocalLesao) TableName() string {
	return "locais_lesao"
}

// RegistroLesoes is a lesion observed during an Atendimento
type RegistroLesoes struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LocalLesaoID   uint      `gorm:"not null;index" json:"local_lesao_id"`
	DescricaoLesao string    `gorm:"type:varchar(500)" json:"descricao_lesao"`
	AtendimentoID  uint      `gorm:"not null;index" json:"atendimento_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	LocalLesao *LocalLesao             `gorm:"foreignKey:LocalLesaoID" json:"local_lesao,omitempty"`
	Imagens    []RegistroLesoesImagens `gorm:"foreignKey:RegistroLesoesID" json:"imagens,omitempty"`
}

func (RegistroLesoes) TableName() string {
	return "registros_lesoes"
}

// RegistroLesoesImagens references one photo of a lesion in the object store
type RegistroLesoesImagens struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ArquivoPath      string    `gorm:"type:varchar(300);not null" json:"arquivo_path"`
	RegistroLesoesID uint      `gorm:"not null;index" json:"registro_lesoes_id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RegistroLesoesImagens) TableName() string {
	return "registros_lesoes_imagens"
}

// LocaisLesao is the body-location catalog, in anatomical order.
var LocaisLesao = []string{
	"Cabeça",
	"Face",
	"Pescoço",
	"Ombro direito",
	"Ombro esquerdo",
	"Braço direito",
	"Braço esquerdo",
	"Cotovelo direito",
	"Cotovelo esquerdo",
	"Antebraço direito",
	"Antebraço esquerdo",
	"Punho direito",
	"Punho esquerdo",
	"Mão direita",
	"Mão esquerda",
	"Tórax",
	"Abdômen",
	"Lombar",
	"Pélvis",
	"Quadril direito",
	"Quadril esquerdo",
	"Coxa direita",
	"Coxa esquerda",
	"Joelho direito",
	"Joelho esquerdo",
	"Perna direita",
	"Perna esquerda",
	"Tornozelo direito",
	"Tornozelo esquerdo",
	"Pé direito",
	"Pé esquerdo",
}
