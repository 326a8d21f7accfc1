package entity

import "time"

// UserRole is the association row binding a user to a role.
type UserRole struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	RoleID    uint      `gorm:"primaryKey;index" json:"role_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// UserUnidadeSaude is the association row binding a user to a health unit.
type UserUnidadeSaude struct {
	UserID         uint      `gorm:"primaryKey" json:"user_id"`
	UnidadeSaudeID uint      `gorm:"primaryKey;index" json:"unidade_saude_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserUnidadeSaude) TableName() string {
	return "user_unidades_saude"
}
