package usecase

import (
	"context"
	"testing"
	"time"

	"dermatriagem-api/config"
	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/repository"
	"dermatriagem-api/internal/service"
	"dermatriagem-api/internal/testutil"
	"dermatriagem-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Submit(ctx context.Context, email entity.InviteEmail) {
	m.Called(email)
}

type fixture struct {
	db         *gorm.DB
	tokenStore *service.TokenStore
	redis      *miniredis.Miniredis
	jwt        *jwt.JWTService
	notifier   *mockNotifier
	admin      *entity.User
	unidades   map[string]entity.UnidadeSaude
	roles      map[string]entity.Role
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	client, mr := testutil.NewRedis(t)

	f := &fixture{
		db:         db,
		tokenStore: service.NewTokenStore(client),
		redis:      mr,
		jwt: jwt.NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: time.Hour,
			InviteExpiry:  48 * time.Hour,
		}),
		notifier: new(mockNotifier),
		unidades: map[string]entity.UnidadeSaude{},
		roles:    map[string]entity.Role{},
	}

	for _, code := range []string{"X", "Y", "Z"} {
		u := entity.UnidadeSaude{NomeUnidadeSaude: "Unidade " + code, CodigoUnidadeSaude: code, FlAtivo: true}
		require.NoError(t, db.Create(&u).Error)
		f.unidades[code] = u
	}
	for i, name := range []string{entity.RoleAdmin, entity.RoleSupervisor, entity.RolePesquisador} {
		r := entity.Role{Name: name, NivelAcesso: i + 1}
		require.NoError(t, db.Create(&r).Error)
		f.roles[name] = r
	}

	f.admin = f.createUser(t, "11111111111", "admin@exemplo.com", "admin123", true,
		[]string{entity.RoleAdmin}, []string{"X"})
	return f
}

// createUser inserts a user with the given roles and units and returns it
// reloaded with associations.
func (f *fixture) createUser(t *testing.T, cpf, email, senha string, ativo bool, roles, unidades []string) *entity.User {
	t.Helper()

	user := entity.User{Email: email, CPF: cpf, FlAtivo: ativo}
	if senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
		require.NoError(t, err)
		h := string(hash)
		user.SenhaHash = &h
	}
	require.NoError(t, f.db.Omit("Roles", "UnidadesSaude").Create(&user).Error)

	for _, name := range roles {
		require.NoError(t, f.db.Create(&entity.UserRole{UserID: user.ID, RoleID: f.roles[name].ID}).Error)
	}
	for _, code := range unidades {
		require.NoError(t, f.db.Create(&entity.UserUnidadeSaude{UserID: user.ID, UnidadeSaudeID: f.unidades[code].ID}).Error)
	}

	return f.reload(t, user.ID)
}

func (f *fixture) reload(t *testing.T, id uint) *entity.User {
	t.Helper()

	user, err := repository.NewUserRepository().FindByID(context.Background(), f.db, id)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func (f *fixture) countUsers(t *testing.T) int64 {
	t.Helper()

	var n int64
	require.NoError(t, f.db.Model(&entity.User{}).Count(&n).Error)
	return n
}

func (f *fixture) adminUsecase() AdminUsecase {
	log := testutil.QuietLogger()
	return NewAdminUsecase(
		f.db,
		log,
		repository.NewUserRepository(),
		repository.NewMembershipRepository(),
		repository.NewRoleRepository(),
		repository.NewUnidadeSaudeRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()),
		f.tokenStore,
		f.notifier,
		f.jwt,
		"sitebonito.com/completar-cadastro",
	)
}

func (f *fixture) authUsecase() AuthUsecase {
	log := testutil.QuietLogger()
	return NewAuthUsecase(
		f.db,
		log,
		repository.NewUserRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()),
		f.jwt,
		f.tokenStore,
	)
}

func roleNames(user *entity.User) []string {
	names := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		names[i] = r.Name
	}
	return names
}

func unidadeCodes(user *entity.User) []string {
	codes := make([]string, len(user.UnidadesSaude))
	for i, u := range user.UnidadesSaude {
		codes[i] = u.CodigoUnidadeSaude
	}
	return codes
}

func boolPtr(b bool) *bool {
	return &b
}
