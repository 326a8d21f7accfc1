package entity

import "time"

// TermoConsentimento references the signed consent document in the object store
type TermoConsentimento struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ArquivoPath string    `gorm:"type:varchar(300);not null" json:"arquivo_path"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TermoConsentimento) TableName() string {
	return "termos_consentimento"
}
