package dto

import "time"

// Request DTOs

// LoginRequest accepts either the email or the CPF as login.
type LoginRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	CPF   string `json:"cpf" validate:"omitempty,cpf"`
	Senha string `json:"senha" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RoleResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NivelAcesso int    `json:"nivel_acesso"`
}

type UnidadeSaudeResponse struct {
	ID                 uint   `json:"id"`
	NomeUnidadeSaude   string `json:"nome_unidade_saude"`
	NomeLocalizacao    string `json:"nome_localizacao"`
	CodigoUnidadeSaude string `json:"codigo_unidade_saude"`
	CidadeUnidadeSaude string `json:"cidade_unidade_saude"`
	FlAtivo            bool   `json:"fl_ativo"`
}

// UserResponse is the full user projection, associations included.
type UserResponse struct {
	ID                   uint                   `json:"id"`
	NomeUsuario          *string                `json:"nome_usuario"`
	Email                string                 `json:"email"`
	CPF                  string                 `json:"cpf"`
	FlAtivo              bool                   `json:"fl_ativo"`
	Roles                []RoleResponse         `json:"roles"`
	UnidadesSaude        []UnidadeSaudeResponse `json:"unidades_saude"`
	IDUsuarioCriacao     *uint                  `json:"id_usuario_criacao"`
	IDUsuarioAtualizacao *uint                  `json:"id_usuario_atualizacao"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}
