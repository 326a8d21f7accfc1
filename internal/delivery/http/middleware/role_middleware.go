package middleware

import (
	"net/http"

	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user holds any of the
// named roles. The user is read from context (set by AuthMiddleware).
func RequireRole(names ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "")
				return
			}

			if !user.HasRole(names...) {
				response.Forbidden(w, "Você não tem permissão para acessar este recurso")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
