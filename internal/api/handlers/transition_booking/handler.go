package transition_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	bookingsService "github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings/models"
)

const (
	msgInvalidTenant      = "tenant inválido"
	msgInvalidBookingID   = "identificador do agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgReasonTooLong      = "motivo excede o tamanho máximo permitido"
	msgBookingNotFound    = "agendamento não encontrado"
	msgUnknownAction      = "ação de transição desconhecida"
	msgInvalidTransition  = "transição de status não permitida"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/{action}
//
// action: confirm | start | complete | cancel | reject | no-show.
// Тело опционально; reason учитывается только для cancel и reject.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/{action} - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}
	action := domain.TransitionAction(vars["action"])

	var req models.TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /bookings/{id}/{action} - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLen {
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	result, err := h.service.Transition(r.Context(), tenantID, bookingID, action, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/{action} - booking not found: %s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrUnknownAction):
			h.logger.Warn("PATCH /bookings/{id}/{action} - unknown action: %s", action)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/{action} - invalid transition: id=%s, %v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/{action} - failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/{action} - booking id=%s action=%s -> status=%s",
		bookingID, action, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
