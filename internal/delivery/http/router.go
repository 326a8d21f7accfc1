package http

import (
	"net/http"

	"dermatriagem-api/internal/delivery/http/handler"
	"dermatriagem-api/internal/delivery/http/middleware"
	"dermatriagem-api/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	adminHandler    *handler.AdminHandler
	auditLogHandler *handler.AuditLogHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		adminHandler:    adminHandler,
		auditLogHandler: auditLogHandler,
		healthHandler:   healthHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(metrics.Middleware)

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Handle).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/convite", r.adminHandler.ResolveConvite).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected - admin only), unversioned
	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/convidar-usuario", r.adminHandler.ConvidarUsuario).Methods(http.MethodPost)
	admin.HandleFunc("/editar-usuario", r.adminHandler.EditarUsuario).Methods(http.MethodPost)
	admin.HandleFunc("/usuarios", r.adminHandler.ListUsuarios).Methods(http.MethodGet)
	admin.HandleFunc("/roles", r.adminHandler.ListRoles).Methods(http.MethodGet)
	admin.HandleFunc("/unidades-saude", r.adminHandler.ListUnidadesSaude).Methods(http.MethodGet)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.router
}

// Handler returns the routed API wrapped in CORS. CORS sits outside the mux so
// preflight requests are answered before route method matching.
func (r *Router) Handler() http.Handler {
	return r.corsMiddleware.Handle(r.Setup())
}
