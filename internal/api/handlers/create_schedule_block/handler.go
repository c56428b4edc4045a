package create_schedule_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	scheduleblocksService "github.com/mavisrv/MAVI-ScheduleService/internal/service/scheduleblocks"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/scheduleblocks/models"
)

const (
	msgInvalidTenant         = "tenant inválido"
	msgInvalidProfessionalID = "identificador do profissional inválido"
	msgInvalidRequestBody    = "corpo da requisição inválido"
	msgProfessionalNotFound  = "profissional não encontrado"
	msgInvalidBlock          = "bloqueio de agenda inválido"
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

// Handle POST /api/v1/professionals/{professionalId}/schedule-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	professionalID, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil || professionalID == uuid.Nil {
		h.logger.Warn("POST /professionals/{id}/schedule-blocks - invalid professional id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req models.CreateScheduleBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals/{id}/schedule-blocks - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), tenantID, professionalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleblocksService.ErrProfessionalNotFound):
			h.logger.Warn("POST /professionals/{id}/schedule-blocks - professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, scheduleblocksService.ErrInvalidInput):
			h.logger.Warn("POST /professionals/{id}/schedule-blocks - invalid block: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /professionals/{id}/schedule-blocks - failed: professional=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/schedule-blocks - block created: id=%s, professional=%s", result.ID, professionalID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
