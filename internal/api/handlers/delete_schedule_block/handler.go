package delete_schedule_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	scheduleblocksService "github.com/mavisrv/MAVI-ScheduleService/internal/service/scheduleblocks"
)

const (
	msgInvalidTenant  = "tenant inválido"
	msgInvalidBlockID = "identificador do bloqueio inválido"
	msgBlockNotFound  = "bloqueio de agenda não encontrado"
)

type Handler struct {
	service ScheduleBlocksService
	logger  Logger
}

func NewHandler(service ScheduleBlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/schedule-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil || blockID == uuid.Nil {
		h.logger.Warn("DELETE /schedule-blocks/{id} - invalid block id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), tenantID, blockID); err != nil {
		switch {
		case errors.Is(err, scheduleblocksService.ErrBlockNotFound):
			h.logger.Warn("DELETE /schedule-blocks/{id} - block not found: id=%s", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /schedule-blocks/{id} - failed: id=%s, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule-blocks/{id} - block deleted: id=%s, tenant=%s", blockID, tenantID)
	w.WriteHeader(http.StatusNoContent)
}
