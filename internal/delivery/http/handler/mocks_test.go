package handler

import (
	"context"

	"dermatriagem-api/internal/delivery/dto"
	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/pkg/jwt"

	"github.com/stretchr/testify/mock"
)

type mockAdminUsecase struct {
	mock.Mock
}

func (m *mockAdminUsecase) InviteUser(ctx context.Context, actor *entity.User, req *dto.InviteUserRequest) error {
	return m.Called(actor, req).Error(0)
}

func (m *mockAdminUsecase) EditUser(ctx context.Context, actor *entity.User, req *dto.EditUserRequest) (*dto.UserResponse, error) {
	args := m.Called(actor, req)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAdminUsecase) ListUsers(ctx context.Context, actor *entity.User) (*dto.UserListResponse, error) {
	args := m.Called(actor)
	resp, _ := args.Get(0).(*dto.UserListResponse)
	return resp, args.Error(1)
}

func (m *mockAdminUsecase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	args := m.Called()
	resp, _ := args.Get(0).([]dto.RoleResponse)
	return resp, args.Error(1)
}

func (m *mockAdminUsecase) ListUnidadesSaude(ctx context.Context) ([]dto.UnidadeSaudeResponse, error) {
	args := m.Called()
	resp, _ := args.Get(0).([]dto.UnidadeSaudeResponse)
	return resp, args.Error(1)
}

func (m *mockAdminUsecase) ResolveInviteToken(ctx context.Context, token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *mockAdminUsecase) ConsumeInviteToken(ctx context.Context, token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uint, accessTokenID, refreshToken string) error {
	return m.Called(userID, accessTokenID, refreshToken).Error(0)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	args := m.Called(userID)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) ResolveSession(ctx context.Context, accessToken string) (*entity.User, *jwt.Claims, error) {
	args := m.Called(accessToken)
	user, _ := args.Get(0).(*entity.User)
	claims, _ := args.Get(1).(*jwt.Claims)
	return user, claims, args.Error(2)
}
