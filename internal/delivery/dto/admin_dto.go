package dto

// InviteUserRequest is the body of POST /admin/convidar-usuario.
type InviteUserRequest struct {
	Email          string `json:"email" validate:"required,email,max=100"`
	CPF            string `json:"cpf" validate:"required,cpf"`
	UnidadeSaudeID uint   `json:"unidade_saude_id" validate:"required,gt=0"`
	RoleID         uint   `json:"role_id" validate:"required,gt=0"`
}

// EditUserRequest is the body of POST /admin/editar-usuario. FlAtivo is a
// pointer so a missing field is told apart from false.
type EditUserRequest struct {
	CPF          string `json:"cpf" validate:"required,cpf"`
	UnidadeSaude uint   `json:"unidade_saude" validate:"required,gt=0"`
	RoleID       uint   `json:"role_id" validate:"required,gt=0"`
	FlAtivo      *bool  `json:"fl_ativo" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// InviteTokenRequest carries a token taken from an invitation link.
type InviteTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type InviteTokenResponse struct {
	Email string `json:"email"`
}
