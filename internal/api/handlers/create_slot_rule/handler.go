package create_slot_rule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	slotrulesService "github.com/mavisrv/MAVI-ScheduleService/internal/service/slotrules"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/slotrules/models"
)

const (
	msgInvalidTenant      = "tenant inválido"
	msgTenantMismatch     = "tenant do caminho não corresponde ao tenant autenticado"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidRule        = "regra de geração de horários inválida"
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

// Handle POST /api/v1/tenants/{tenantId}/slot-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	pathTenantID, err := uuid.Parse(mux.Vars(r)["tenantId"])
	if err != nil || pathTenantID != tenantID {
		h.logger.Warn("POST /tenants/{id}/slot-rules - tenant mismatch: path=%s, auth=%s",
			mux.Vars(r)["tenantId"], tenantID)
		handlers.RespondError(w, http.StatusForbidden, msgTenantMismatch)
		return
	}

	var req models.CreateSlotRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/slot-rules - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotrulesService.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/slot-rules - invalid rule: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /tenants/{id}/slot-rules - failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{id}/slot-rules - rule created: id=%s, tenant=%s", result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
