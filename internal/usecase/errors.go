package usecase

import (
	"errors"
	"strings"

	"dermatriagem-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists    = errors.New("user with this cpf or email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserInactive         = errors.New("user is inactive")
	ErrUnidadeSaudeNotFound = errors.New("unidade de saude not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrSelfDeactivation     = errors.New("users cannot deactivate themselves")
	ErrForbidden            = errors.New("caller lacks the required role")
	ErrInvalidInviteToken   = errors.New("invalid, expired or used invite token")
	ErrInvalidCredentials   = errors.New("invalid login or password")
	ErrMissingLogin         = errors.New("email or cpf is required")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrAuditLogNotFound     = errors.New("audit log not found")
)

// requireRole is the membership check run before any admin mutation.
func requireRole(actor *entity.User, names ...string) error {
	if actor == nil || !actor.HasRole(names...) {
		return ErrForbidden
	}
	return nil
}

// isDuplicateKeyError checks if the error is a unique constraint violation
// containing the specified constraint name. Translated gorm errors carry no
// constraint name and always match.
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
