package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dermatriagem-api/internal/delivery/dto"
	"dermatriagem-api/internal/delivery/http/middleware"
	"dermatriagem-api/internal/usecase"
	"dermatriagem-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("Login", &dto.LoginRequest{CPF: "11111111111", Senha: "admin123"}).
		Return(&dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil)
	uc.On("Login", &dto.LoginRequest{Email: "admin@exemplo.com", Senha: "errada"}).
		Return(nil, usecase.ErrInvalidCredentials)
	uc.On("Login", &dto.LoginRequest{Email: "inativo@exemplo.com", Senha: "x"}).
		Return(nil, usecase.ErrUserInactive)
	h := NewAuthHandler(uc, validator.NewValidator())

	cases := []struct {
		body   string
		status int
	}{
		{`{"cpf":"11111111111","senha":"admin123"}`, http.StatusOK},
		{`{"email":"admin@exemplo.com","senha":"errada"}`, http.StatusUnauthorized},
		{`{"email":"inativo@exemplo.com","senha":"x"}`, http.StatusForbidden},
		{`{"email":"admin@exemplo.com"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tc.body)))
		assert.Equal(t, tc.status, rec.Code, tc.body)
	}
}

func TestLogoutPassesRefreshToken(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("Logout", uint(1), "jti-1", "refresh").Return(nil).Once()
	h := NewAuthHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", strings.NewReader(`{"refresh_token":"refresh"}`))
	ctx := middleware.WithUser(req.Context(), adminUser)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "jti-1")
	rec := httptest.NewRecorder()

	h.Logout(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestRefreshTokenRevoked(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("RefreshToken", mock.Anything).Return(nil, usecase.ErrTokenRevoked)
	h := NewAuthHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", strings.NewReader(`{"refresh_token":"old"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCurrentUser(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("GetCurrentUser", uint(1)).Return(&dto.UserResponse{ID: 1, Email: "admin@exemplo.com"}, nil)
	h := NewAuthHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, adminRequest(http.MethodGet, "/api/v1/auth/me", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	assert.Equal(t, "admin@exemplo.com", data["email"])
}
