package create_booking

import (
	"errors"
	"net/http"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	createBooking "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/create_booking"
)

const (
	msgInvalidTenant        = "tenant inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidStartTime     = "horário inválido, use o formato YYYY-MM-DDTHH:MM:SS"
	msgSlotNotAvailable     = "o horário selecionado não está disponível"
	msgProfessionalNotFound = "profissional não encontrado"
	msgCustomerNotFound     = "cliente não encontrado"
	msgServiceNotFound      = "serviço não encontrado"
	msgServiceNotAssigned   = "serviço não atribuído ao profissional"
	msgTimeInPast           = "o horário informado já passou"
	msgMisconfiguredRule    = "regra de geração de horários mal configurada"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - slot not available: professional=%s, start=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings - professional not found: %s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - customer not found: %s", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - service not found: tenant=%s", tenantID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotAssigned):
			h.logger.Warn("POST /bookings - service not assigned: professional=%s", req.ProfessionalID)
			handlers.RespondUnprocessable(w, msgServiceNotAssigned)

		case errors.Is(err, createBooking.ErrTimeInPast):
			h.logger.Warn("POST /bookings - start time in past: %s", req.StartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createBooking.ErrMisconfiguredRule):
			h.logger.Warn("POST /bookings - misconfigured rule: tenant=%s", tenantID)
			handlers.RespondUnprocessable(w, msgMisconfiguredRule)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%s, tenant=%s", result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
