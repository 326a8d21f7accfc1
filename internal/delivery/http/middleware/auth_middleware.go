package middleware

import (
	"context"
	"net/http"
	"strings"

	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/usecase"
	"dermatriagem-api/pkg/jwt"
	"dermatriagem-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserKey    contextKey = "user"
	ClaimsKey  contextKey = "claims"
	TokenIDKey contextKey = "token_id"
)

// SessionResolver turns a bearer access token into the live user.
type SessionResolver interface {
	ResolveSession(ctx context.Context, accessToken string) (*entity.User, *jwt.Claims, error)
}

type AuthMiddleware struct {
	sessions SessionResolver
	log      *logrus.Logger
}

func NewAuthMiddleware(sessions SessionResolver, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		log:      log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Cabeçalho Authorization é obrigatório")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Formato do cabeçalho Authorization inválido")
			return
		}

		user, claims, err := m.sessions.ResolveSession(r.Context(), parts[1])
		if err != nil {
			if usecase.IsAuthError(err) {
				response.Unauthorized(w, "Token inválido ou expirado")
				return
			}
			m.log.Warnf("Failed to resolve session: %+v", err)
			response.InternalServerError(w, "Falha ao validar token")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		ctx = context.WithValue(ctx, ClaimsKey, claims)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok && user != nil
}

// GetClaimsFromContext extracts the access token claims from context
func GetClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims, ok && claims != nil
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// WithUser returns a copy of ctx carrying the given user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}
