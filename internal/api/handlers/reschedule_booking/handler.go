package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	rescheduleBooking "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidTenant      = "tenant inválido"
	msgInvalidBookingID   = "identificador do agendamento inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStartTime   = "horário inválido, use o formato YYYY-MM-DDTHH:MM:SS"
	msgBookingNotFound    = "agendamento não encontrado"
	msgCannotReschedule   = "agendamento não pode ser remarcado neste status"
	msgSlotNotAvailable   = "o horário selecionado não está disponível"
	msgTimeInPast         = "o horário informado já passou"
	msgMisconfiguredRule  = "regra de geração de horários mal configurada"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - booking not found: %s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - cannot reschedule: id=%s, %v", bookingID, err)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - slot not available: id=%s, start=%s",
				bookingID, req.NewStartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrTimeInPast):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - start time in past: %s", req.NewStartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, rescheduleBooking.ErrMisconfiguredRule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - misconfigured rule: tenant=%s", tenantID)
			handlers.RespondUnprocessable(w, msgMisconfiguredRule)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - booking id=%s moved to %s", bookingID, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
