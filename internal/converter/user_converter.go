package converter

import (
	"dermatriagem-api/internal/delivery/dto"
	"dermatriagem-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. Roles and
// UnidadesSaude are always arrays, empty when not preloaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:                   user.ID,
		NomeUsuario:          user.NomeUsuario,
		Email:                user.Email,
		CPF:                  user.CPF,
		FlAtivo:              user.FlAtivo,
		Roles:                RolesToResponses(user.Roles),
		UnidadesSaude:        UnidadesSaudeToResponses(user.UnidadesSaude),
		IDUsuarioCriacao:     user.IDUsuarioCriacao,
		IDUsuarioAtualizacao: user.IDUsuarioAtualizacao,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = dto.RoleResponse{
			ID:          role.ID,
			Name:        role.Name,
			NivelAcesso: role.NivelAcesso,
		}
	}
	return responses
}

func UnidadesSaudeToResponses(unidades []entity.UnidadeSaude) []dto.UnidadeSaudeResponse {
	responses := make([]dto.UnidadeSaudeResponse, len(unidades))
	for i, u := range unidades {
		responses[i] = dto.UnidadeSaudeResponse{
			ID:                 u.ID,
			NomeUnidadeSaude:   u.NomeUnidadeSaude,
			NomeLocalizacao:    u.NomeLocalizacao,
			CodigoUnidadeSaude: u.CodigoUnidadeSaude,
			CidadeUnidadeSaude: u.CidadeUnidadeSaude,
			FlAtivo:            u.FlAtivo,
		}
	}
	return responses
}

// UserAuditSnapshot is the projection stored in audit log metadata.
func UserAuditSnapshot(user *entity.User) map[string]interface{} {
	roleIDs := make([]uint, len(user.Roles))
	for i, r := range user.Roles {
		roleIDs[i] = r.ID
	}
	unidadeIDs := make([]uint, len(user.UnidadesSaude))
	for i, u := range user.UnidadesSaude {
		unidadeIDs[i] = u.ID
	}
	return map[string]interface{}{
		"cpf":               user.CPF,
		"email":             user.Email,
		"fl_ativo":          user.FlAtivo,
		"role_ids":          roleIDs,
		"unidade_saude_ids": unidadeIDs,
	}
}
