package get_slot_rule

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
)

const (
	msgInvalidTenant  = "tenant inválido"
	msgTenantMismatch = "tenant do caminho não corresponde ao tenant autenticado"
)

type Handler struct {
	service SlotRulesService
	logger  Logger
}

func NewHandler(service SlotRulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/slot-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	pathTenantID, err := uuid.Parse(mux.Vars(r)["tenantId"])
	if err != nil || pathTenantID != tenantID {
		h.logger.Warn("GET /tenants/{id}/slot-rules - tenant mismatch: path=%s, auth=%s",
			mux.Vars(r)["tenantId"], tenantID)
		handlers.RespondError(w, http.StatusForbidden, msgTenantMismatch)
		return
	}

	result, err := h.service.GetActive(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /tenants/{id}/slot-rules - failed: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
