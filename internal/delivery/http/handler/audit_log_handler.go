package handler

import (
	"errors"
	"net/http"
	"strconv"

	"dermatriagem-api/internal/usecase"
	"dermatriagem-api/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "ID de log de auditoria inválido")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Log de auditoria não encontrado")
			return
		}
		response.InternalServerError(w, "Falha ao buscar log de auditoria")
		return
	}

	response.Success(w, http.StatusOK, "Log de auditoria encontrado", auditLog)
}

// GetAllAuditLogs lists the audit trail
// @Summary List audit logs
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param action query string false "Exact action, e.g. user.invite"
// @Success 200 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), page, limit, query.Get("action"))
	if err != nil {
		response.InternalServerError(w, "Falha ao listar logs de auditoria")
		return
	}

	response.Success(w, http.StatusOK, "Logs de auditoria listados com sucesso", auditLogs)
}
