package entity

// Role represents an access profile. Lower NivelAcesso means more privileges.
type Role struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(50);not null;index" json:"name"`
	NivelAcesso int    `gorm:"not null" json:"nivel_acesso"`
}

func (Role) TableName() string {
	return "roles"
}

// RoleNames constants
const (
	RoleAdmin       = "Admin"
	RoleSupervisor  = "Supervisor"
	RolePesquisador = "Pesquisador"
)

// Access level constants
const (
	NivelAcessoAdmin       = 1
	NivelAcessoSupervisor  = 2
	NivelAcessoPesquisador = 3
)
