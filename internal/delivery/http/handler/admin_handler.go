package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dermatriagem-api/internal/delivery/dto"
	"dermatriagem-api/internal/delivery/http/middleware"
	"dermatriagem-api/internal/usecase"
	"dermatriagem-api/pkg/response"
	"dermatriagem-api/pkg/validator"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// ConvidarUsuario handles the user invitation
// @Summary Invite a user
// @Description Create an inactive user bound to one unit and one role and email an invitation link
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.InviteUserRequest true "Invite Request"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/convidar-usuario [post]
func (h *AdminHandler) ConvidarUsuario(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.InviteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.adminUsecase.InviteUser(r.Context(), actor, &req); err != nil {
		writeAdminError(w, err, "Falha ao convidar usuário")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Convite enviado com sucesso!"})
}

// EditarUsuario handles the user edition
// @Summary Edit a user
// @Description Replace the unit and role of a user and set its active flag
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EditUserRequest true "Edit Request"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/editar-usuario [post]
func (h *AdminHandler) EditarUsuario(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.EditUser(r.Context(), actor, &req)
	if err != nil {
		writeAdminError(w, err, "Falha ao editar usuário")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *AdminHandler) ListUsuarios(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	users, err := h.adminUsecase.ListUsers(r.Context(), actor)
	if err != nil {
		writeAdminError(w, err, "Falha ao listar usuários")
		return
	}

	response.Success(w, http.StatusOK, "Usuários listados com sucesso", users)
}

func (h *AdminHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.adminUsecase.ListRoles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Falha ao listar permissões")
		return
	}

	response.Success(w, http.StatusOK, "Permissões listadas com sucesso", roles)
}

func (h *AdminHandler) ListUnidadesSaude(w http.ResponseWriter, r *http.Request) {
	unidades, err := h.adminUsecase.ListUnidadesSaude(r.Context())
	if err != nil {
		response.InternalServerError(w, "Falha ao listar unidades de saúde")
		return
	}

	response.Success(w, http.StatusOK, "Unidades de saúde listadas com sucesso", unidades)
}

// ResolveConvite returns the email bound to an invitation token, for the
// registration page to prefill.
func (h *AdminHandler) ResolveConvite(w http.ResponseWriter, r *http.Request) {
	var req dto.InviteTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	email, err := h.adminUsecase.ResolveInviteToken(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInviteToken) {
			response.Error(w, http.StatusBadRequest, "Convite inválido ou expirado", nil)
			return
		}
		response.InternalServerError(w, "Falha ao validar convite")
		return
	}

	response.Success(w, http.StatusOK, "Convite válido", dto.InviteTokenResponse{Email: email})
}

func writeAdminError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		response.BadRequest(w, "CPF ou Email já cadastrado")
	case errors.Is(err, usecase.ErrSelfDeactivation):
		response.BadRequest(w, "Você não pode inativar a si mesmo")
	case errors.Is(err, usecase.ErrUnidadeSaudeNotFound):
		response.NotFound(w, "Unidade de Saúde não encontrada")
	case errors.Is(err, usecase.ErrRoleNotFound):
		response.NotFound(w, "Permissão não encontrada")
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "Usuário não encontrado")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "")
	default:
		response.InternalServerError(w, fallback)
	}
}
