package usecase

import (
	"context"
	"net/url"
	"testing"

	"dermatriagem-api/internal/delivery/dto"
	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInviteUserConflict(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "22222222222", "existente@exemplo.com", "", false, []string{entity.RolePesquisador}, []string{"Y"})
	uc := f.adminUsecase()
	before := f.countUsers(t)

	cases := map[string]dto.InviteUserRequest{
		"cpf collides": {
			Email: "outro@exemplo.com", CPF: "22222222222",
			UnidadeSaudeID: f.unidades["X"].ID, RoleID: f.roles[entity.RoleSupervisor].ID,
		},
		"email collides": {
			Email: "existente@exemplo.com", CPF: "99999999999",
			UnidadeSaudeID: f.unidades["X"].ID, RoleID: f.roles[entity.RoleSupervisor].ID,
		},
		"both collide": {
			Email: "existente@exemplo.com", CPF: "22222222222",
			UnidadeSaudeID: f.unidades["X"].ID, RoleID: f.roles[entity.RoleSupervisor].ID,
		},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := uc.InviteUser(context.Background(), f.admin, &req)
			assert.ErrorIs(t, err, ErrUserAlreadyExists)
		})
	}

	assert.Equal(t, before, f.countUsers(t))
	f.notifier.AssertNotCalled(t, "Submit", mock.Anything)
}

func TestInviteUserUnknownReferences(t *testing.T) {
	f := newFixture(t)
	uc := f.adminUsecase()
	before := f.countUsers(t)

	err := uc.InviteUser(context.Background(), f.admin, &dto.InviteUserRequest{
		Email: "novo@exemplo.com", CPF: "33333333333",
		UnidadeSaudeID: 999, RoleID: f.roles[entity.RolePesquisador].ID,
	})
	assert.ErrorIs(t, err, ErrUnidadeSaudeNotFound)

	err = uc.InviteUser(context.Background(), f.admin, &dto.InviteUserRequest{
		Email: "novo@exemplo.com", CPF: "33333333333",
		UnidadeSaudeID: f.unidades["X"].ID, RoleID: 999,
	})
	assert.ErrorIs(t, err, ErrRoleNotFound)

	assert.Equal(t, before, f.countUsers(t))
	f.notifier.AssertNotCalled(t, "Submit", mock.Anything)
}

func TestInviteUserRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	pesquisador := f.createUser(t, "44444444444", "pesq@exemplo.com", "x", true, []string{entity.RolePesquisador}, []string{"X"})
	before := f.countUsers(t)

	err := f.adminUsecase().InviteUser(context.Background(), pesquisador, &dto.InviteUserRequest{
		Email: "novo@exemplo.com", CPF: "33333333333",
		UnidadeSaudeID: f.unidades["X"].ID, RoleID: f.roles[entity.RoleAdmin].ID,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, before, f.countUsers(t))
}

func TestInviteUserSuccess(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("Submit", mock.Anything).Return().Once()
	uc := f.adminUsecase()
	ctx := context.Background()

	err := uc.InviteUser(ctx, f.admin, &dto.InviteUserRequest{
		Email: "novo@exemplo.com", CPF: "33333333333",
		UnidadeSaudeID: f.unidades["Y"].ID, RoleID: f.roles[entity.RoleSupervisor].ID,
	})
	require.NoError(t, err)

	var matching int64
	require.NoError(t, f.db.Model(&entity.User{}).Where("cpf = ?", "33333333333").Count(&matching).Error)
	assert.Equal(t, int64(1), matching)

	user, err := repository.NewUserRepository().FindByCPF(ctx, f.db, "33333333333")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.FlAtivo)
	assert.Nil(t, user.SenhaHash)
	require.NotNil(t, user.IDUsuarioCriacao)
	assert.Equal(t, f.admin.ID, *user.IDUsuarioCriacao)
	assert.Equal(t, []string{entity.RoleSupervisor}, roleNames(user))
	assert.Equal(t, []string{"Y"}, unidadeCodes(user))

	f.notifier.AssertExpectations(t)
	email := f.notifier.Calls[0].Arguments.Get(0).(entity.InviteEmail)
	assert.Equal(t, "novo@exemplo.com", email.To)

	link, err := url.Parse(email.Link)
	require.NoError(t, err)
	assert.Equal(t, "sitebonito.com/completar-cadastro", link.Path)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	resolved, err := uc.ResolveInviteToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "novo@exemplo.com", resolved)

	consumed, err := uc.ConsumeInviteToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "novo@exemplo.com", consumed)

	_, err = uc.ConsumeInviteToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidInviteToken)
	_, err = uc.ResolveInviteToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidInviteToken)

	logs, err := repository.NewAuditLogRepository().FindByAction(ctx, f.db, entity.AuditActionUserInvite)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, f.admin.ID, *logs[0].UserID)
}

func TestInviteUserKeepsCommittedUserWhenRedisIsDown(t *testing.T) {
	f := newFixture(t)
	uc := f.adminUsecase()
	ctx := context.Background()

	f.redis.Close()

	err := uc.InviteUser(ctx, f.admin, &dto.InviteUserRequest{
		Email: "semredis@exemplo.com", CPF: "44444444444",
		UnidadeSaudeID: f.unidades["X"].ID, RoleID: f.roles[entity.RolePesquisador].ID,
	})
	require.NoError(t, err)

	user, err := repository.NewUserRepository().FindByCPF(ctx, f.db, "44444444444")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.FlAtivo)
	assert.Equal(t, []string{entity.RolePesquisador}, roleNames(user))

	logs, err := repository.NewAuditLogRepository().FindByAction(ctx, f.db, entity.AuditActionUserInvite)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	f.notifier.AssertNotCalled(t, "Submit", mock.Anything)
}

func TestResolveInviteTokenRejectsOtherTokens(t *testing.T) {
	f := newFixture(t)
	uc := f.adminUsecase()

	access, _, err := f.jwt.GenerateAccessToken(f.admin.ID, f.admin.Email)
	require.NoError(t, err)

	_, err = uc.ResolveInviteToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidInviteToken)

	_, err = uc.ResolveInviteToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidInviteToken)

	// Valid signature but never registered.
	invite, _, err := f.jwt.GenerateInviteToken(42, "ninguem@exemplo.com")
	require.NoError(t, err)
	_, err = uc.ResolveInviteToken(context.Background(), invite)
	assert.ErrorIs(t, err, ErrInvalidInviteToken)
}

func TestEditUserReplacesAssociations(t *testing.T) {
	f := newFixture(t)
	target := f.createUser(t, "55555555555", "alvo@exemplo.com", "", true,
		[]string{entity.RoleAdmin, entity.RoleSupervisor}, []string{"X", "Y"})
	require.Len(t, target.Roles, 2)
	require.Len(t, target.UnidadesSaude, 2)

	resp, err := f.adminUsecase().EditUser(context.Background(), f.admin, &dto.EditUserRequest{
		CPF:          "55555555555",
		UnidadeSaude: f.unidades["Z"].ID,
		RoleID:       f.roles[entity.RolePesquisador].ID,
		FlAtivo:      boolPtr(false),
	})
	require.NoError(t, err)

	require.Len(t, resp.Roles, 1)
	assert.Equal(t, entity.RolePesquisador, resp.Roles[0].Name)
	require.Len(t, resp.UnidadesSaude, 1)
	assert.Equal(t, "Z", resp.UnidadesSaude[0].CodigoUnidadeSaude)
	assert.False(t, resp.FlAtivo)
	require.NotNil(t, resp.IDUsuarioAtualizacao)
	assert.Equal(t, f.admin.ID, *resp.IDUsuarioAtualizacao)

	stored := f.reload(t, target.ID)
	assert.Equal(t, []string{entity.RolePesquisador}, roleNames(stored))
	assert.Equal(t, []string{"Z"}, unidadeCodes(stored))
	assert.False(t, stored.FlAtivo)

	rows, err := repository.NewMembershipRepository().FindRolesByUserID(context.Background(), f.db, target.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestEditUserSelfDeactivation(t *testing.T) {
	f := newFixture(t)

	_, err := f.adminUsecase().EditUser(context.Background(), f.admin, &dto.EditUserRequest{
		CPF:          f.admin.CPF,
		UnidadeSaude: f.unidades["Z"].ID,
		RoleID:       f.roles[entity.RolePesquisador].ID,
		FlAtivo:      boolPtr(false),
	})
	assert.ErrorIs(t, err, ErrSelfDeactivation)

	stored := f.reload(t, f.admin.ID)
	assert.True(t, stored.FlAtivo)
	assert.Nil(t, stored.IDUsuarioAtualizacao)
	assert.Equal(t, []string{entity.RoleAdmin}, roleNames(stored))
	assert.Equal(t, []string{"X"}, unidadeCodes(stored))
}

func TestEditUserSelfKeepingActive(t *testing.T) {
	f := newFixture(t)

	resp, err := f.adminUsecase().EditUser(context.Background(), f.admin, &dto.EditUserRequest{
		CPF:          f.admin.CPF,
		UnidadeSaude: f.unidades["Y"].ID,
		RoleID:       f.roles[entity.RoleAdmin].ID,
		FlAtivo:      boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, resp.FlAtivo)
	require.Len(t, resp.UnidadesSaude, 1)
	assert.Equal(t, "Y", resp.UnidadesSaude[0].CodigoUnidadeSaude)
}

func TestEditUserNotFound(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "55555555555", "alvo@exemplo.com", "", true, []string{entity.RoleSupervisor}, []string{"X"})
	uc := f.adminUsecase()

	_, err := uc.EditUser(context.Background(), f.admin, &dto.EditUserRequest{
		CPF: "00000000000", UnidadeSaude: f.unidades["X"].ID, RoleID: f.roles[entity.RoleAdmin].ID, FlAtivo: boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = uc.EditUser(context.Background(), f.admin, &dto.EditUserRequest{
		CPF: "55555555555", UnidadeSaude: 999, RoleID: f.roles[entity.RoleAdmin].ID, FlAtivo: boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrUnidadeSaudeNotFound)

	_, err = uc.EditUser(context.Background(), f.admin, &dto.EditUserRequest{
		CPF: "55555555555", UnidadeSaude: f.unidades["X"].ID, RoleID: 999, FlAtivo: boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestListUsersAndCatalogs(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "55555555555", "alvo@exemplo.com", "", false, []string{entity.RoleSupervisor}, []string{"Y"})
	uc := f.adminUsecase()

	list, err := uc.ListUsers(context.Background(), f.admin)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "admin@exemplo.com", list.Users[0].Email)
	assert.Len(t, list.Users[1].Roles, 1)

	roles, err := uc.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 3)

	unidades, err := uc.ListUnidadesSaude(context.Background())
	require.NoError(t, err)
	assert.Len(t, unidades, 3)
}
