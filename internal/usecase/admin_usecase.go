package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"dermatriagem-api/internal/converter"
	"dermatriagem-api/internal/delivery/dto"
	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/domain/repository"
	"dermatriagem-api/internal/infrastructure/metrics"
	"dermatriagem-api/internal/service"
	"dermatriagem-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	InviteUser(ctx context.Context, actor *entity.User, req *dto.InviteUserRequest) error
	EditUser(ctx context.Context, actor *entity.User, req *dto.EditUserRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, actor *entity.User) (*dto.UserListResponse, error)
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
	ListUnidadesSaude(ctx context.Context) ([]dto.UnidadeSaudeResponse, error)
	ResolveInviteToken(ctx context.Context, token string) (string, error)
	ConsumeInviteToken(ctx context.Context, token string) (string, error)
}

type adminUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	membershipRepo   repository.MembershipRepository
	roleRepo         repository.RoleRepository
	unidadeSaudeRepo repository.UnidadeSaudeRepository
	auditService     service.AuditService
	tokenStore       *service.TokenStore
	notifier         service.InviteNotifier
	jwtService       *jwt.JWTService
	inviteBaseURL    string
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	roleRepo repository.RoleRepository,
	unidadeSaudeRepo repository.UnidadeSaudeRepository,
	auditService service.AuditService,
	tokenStore *service.TokenStore,
	notifier service.InviteNotifier,
	jwtService *jwt.JWTService,
	inviteBaseURL string,
) AdminUsecase {
	return &adminUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		membershipRepo:   membershipRepo,
		roleRepo:         roleRepo,
		unidadeSaudeRepo: unidadeSaudeRepo,
		auditService:     auditService,
		tokenStore:       tokenStore,
		notifier:         notifier,
		jwtService:       jwtService,
		inviteBaseURL:    inviteBaseURL,
	}
}

func (u *adminUsecase) InviteUser(ctx context.Context, actor *entity.User, req *dto.InviteUserRequest) error {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByCPFOrEmail(ctx, tx, req.CPF, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by cpf or email: %+v", err)
		return err
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}

	unidade, err := u.unidadeSaudeRepo.FindByID(ctx, tx, req.UnidadeSaudeID)
	if err != nil {
		u.log.Warnf("Failed to find unidade de saude: %+v", err)
		return err
	}
	if unidade == nil {
		return ErrUnidadeSaudeNotFound
	}

	role, err := u.roleRepo.FindByID(ctx, tx, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	user := &entity.User{
		Email:            req.Email,
		CPF:              req.CPF,
		FlAtivo:          false,
		IDUsuarioCriacao: &actor.ID,
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "users") {
			return ErrUserAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}

	if err := u.membershipRepo.AddRole(ctx, tx, &entity.UserRole{UserID: user.ID, RoleID: role.ID}); err != nil {
		if isForeignKeyError(err, "role") {
			return ErrRoleNotFound
		}
		u.log.Warnf("Failed to bind role: %+v", err)
		return err
	}
	if err := u.membershipRepo.AddUnidadeSaude(ctx, tx, &entity.UserUnidadeSaude{UserID: user.ID, UnidadeSaudeID: unidade.ID}); err != nil {
		if isForeignKeyError(err, "unidade") {
			return ErrUnidadeSaudeNotFound
		}
		u.log.Warnf("Failed to bind unidade de saude: %+v", err)
		return err
	}

	user.Roles = []entity.Role{*role}
	user.UnidadesSaude = []entity.UnidadeSaude{*unidade}
	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionUserInvite, "user", user.ID, converter.UserAuditSnapshot(user)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// Only a committed user gets a token. From here on failures are logged
	// like notifier failures; the user row is already in place.
	u.sendInvite(ctx, user)

	u.log.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"invited_by": actor.ID,
	}).Info("User invited")

	return nil
}

func (u *adminUsecase) sendInvite(ctx context.Context, user *entity.User) {
	token, tokenID, err := u.jwtService.GenerateInviteToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate invite token: %+v", err)
		metrics.RecordInvite(metrics.InviteFailed)
		return
	}

	expiry := u.jwtService.GetInviteExpiry()
	if err := u.tokenStore.StoreInvite(ctx, user.Email, tokenID, expiry); err != nil {
		u.log.Warnf("Failed to store invite token in Redis: %+v", err)
		metrics.RecordInvite(metrics.InviteFailed)
		return
	}

	u.notifier.Submit(ctx, entity.InviteEmail{
		To:        user.Email,
		Link:      u.inviteLink(token),
		ExpiresAt: time.Now().Add(expiry),
	})
}

func (u *adminUsecase) inviteLink(token string) string {
	return fmt.Sprintf("%s?token=%s", u.inviteBaseURL, url.QueryEscape(token))
}

func (u *adminUsecase) EditUser(ctx context.Context, actor *entity.User, req *dto.EditUserRequest) (*dto.UserResponse, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByCPF(ctx, tx, req.CPF)
	if err != nil {
		u.log.Warnf("Failed to find user by cpf: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	unidade, err := u.unidadeSaudeRepo.FindByID(ctx, tx, req.UnidadeSaude)
	if err != nil {
		u.log.Warnf("Failed to find unidade de saude: %+v", err)
		return nil, err
	}
	if unidade == nil {
		return nil, ErrUnidadeSaudeNotFound
	}

	role, err := u.roleRepo.FindByID(ctx, tx, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	flAtivo := *req.FlAtivo
	if user.ID == actor.ID && !flAtivo {
		return nil, ErrSelfDeactivation
	}

	before := converter.UserAuditSnapshot(user)

	// Full overwrite of both association sets.
	if err := u.membershipRepo.DeleteRolesByUserID(ctx, tx, user.ID); err != nil {
		u.log.Warnf("Failed to clear roles: %+v", err)
		return nil, err
	}
	if err := u.membershipRepo.AddRole(ctx, tx, &entity.UserRole{UserID: user.ID, RoleID: role.ID}); err != nil {
		u.log.Warnf("Failed to bind role: %+v", err)
		return nil, err
	}
	if err := u.membershipRepo.DeleteUnidadesSaudeByUserID(ctx, tx, user.ID); err != nil {
		u.log.Warnf("Failed to clear unidades de saude: %+v", err)
		return nil, err
	}
	if err := u.membershipRepo.AddUnidadeSaude(ctx, tx, &entity.UserUnidadeSaude{UserID: user.ID, UnidadeSaudeID: unidade.ID}); err != nil {
		u.log.Warnf("Failed to bind unidade de saude: %+v", err)
		return nil, err
	}

	if err := u.userRepo.UpdateStatus(ctx, tx, user.ID, flAtivo, actor.ID); err != nil {
		u.log.Warnf("Failed to update user status: %+v", err)
		return nil, err
	}

	updated, err := u.userRepo.FindByID(ctx, tx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to reload user: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionUserUpdate, "user", user.ID, before, converter.UserAuditSnapshot(updated)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(updated), nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, actor *entity.User) (*dto.UserListResponse, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *adminUsecase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := u.roleRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}
	return converter.RolesToResponses(roles), nil
}

func (u *adminUsecase) ListUnidadesSaude(ctx context.Context) ([]dto.UnidadeSaudeResponse, error) {
	unidades, err := u.unidadeSaudeRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all unidades de saude: %+v", err)
		return nil, err
	}
	return converter.UnidadesSaudeToResponses(unidades), nil
}

// ResolveInviteToken returns the email bound to a live invite token without
// consuming it.
func (u *adminUsecase) ResolveInviteToken(ctx context.Context, token string) (string, error) {
	claims, err := u.jwtService.ValidateTokenOfType(token, jwt.InviteToken)
	if err != nil {
		return "", ErrInvalidInviteToken
	}

	active, err := u.tokenStore.InviteActive(ctx, claims.Email, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check invite token in Redis: %+v", err)
		return "", err
	}
	if !active {
		return "", ErrInvalidInviteToken
	}

	return claims.Email, nil
}

// ConsumeInviteToken burns the token; a second call with the same token fails.
// Registration completion lives outside this service and is its only caller.
func (u *adminUsecase) ConsumeInviteToken(ctx context.Context, token string) (string, error) {
	claims, err := u.jwtService.ValidateTokenOfType(token, jwt.InviteToken)
	if err != nil {
		return "", ErrInvalidInviteToken
	}

	consumed, err := u.tokenStore.ConsumeInvite(ctx, claims.Email, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to consume invite token in Redis: %+v", err)
		return "", err
	}
	if !consumed {
		return "", ErrInvalidInviteToken
	}

	return claims.Email, nil
}
