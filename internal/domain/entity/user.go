package entity

import "time"

// User is a health-unit staff account. Invited users start inactive and without
// a password until they complete their registration.
type User struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NomeUsuario          *string   `gorm:"type:varchar(100)" json:"nome_usuario,omitempty"`
	Email                string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	CPF                  string    `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null" json:"cpf"`
	SenhaHash            *string   `gorm:"type:text" json:"-"`
	FlAtivo              bool      `gorm:"not null;index" json:"fl_ativo"`
	IDUsuarioCriacao     *uint     `gorm:"column:id_usuario_criacao" json:"id_usuario_criacao,omitempty"`
	IDUsuarioAtualizacao *uint     `gorm:"column:id_usuario_atualizacao" json:"id_usuario_atualizacao,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships, read through the user_roles and user_unidades_saude
	// association entities.
	Roles         []Role         `gorm:"many2many:user_roles" json:"roles,omitempty"`
	UnidadesSaude []UnidadeSaude `gorm:"many2many:user_unidades_saude" json:"unidades_saude,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds any role with one of the given names.
func (u *User) HasRole(names ...string) bool {
	for _, role := range u.Roles {
		for _, name := range names {
			if role.Name == name {
				return true
			}
		}
	}
	return false
}

// HasUnidadeSaude reports whether the user is bound to the given health unit.
func (u *User) HasUnidadeSaude(id uint) bool {
	for _, unidade := range u.UnidadesSaude {
		if unidade.ID == id {
			return true
		}
	}
	return false
}

// IsFunctional reports whether the user can act in the system: active, with at
// least one role and one health unit.
func (u *User) IsFunctional() bool {
	return u.FlAtivo && len(u.Roles) > 0 && len(u.UnidadesSaude) > 0
}
