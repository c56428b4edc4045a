package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	getAvailableSlots "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTenant         = "tenant inválido"
	msgInvalidProfessionalID = "professionalId inválido"
	msgInvalidServiceIDs     = "serviceIds inválido, informe uma lista de UUIDs separados por vírgula"
	msgInvalidDate           = "data inválida, use o formato YYYY-MM-DD"
	msgProfessionalNotFound  = "profissional não encontrado"
	msgServiceNotFound       = "serviço não encontrado"
	msgServiceNotAssigned    = "serviço não atribuído ao profissional"
	msgMisconfiguredRule     = "regra de geração de horários mal configurada"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	query := r.URL.Query()
	req, err := parseQuery(tenantID, query.Get("professionalId"), query.Get("date"), query.Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /schedule/availability - invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidProfessionalID):
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /schedule/availability - professional not found: %s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /schedule/availability - service not found: tenant=%s", tenantID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotAssigned):
			h.logger.Warn("GET /schedule/availability - service not assigned: professional=%s", req.ProfessionalID)
			handlers.RespondUnprocessable(w, msgServiceNotAssigned)

		case errors.Is(err, getAvailableSlots.ErrMisconfiguredRule):
			h.logger.Warn("GET /schedule/availability - misconfigured rule: tenant=%s", tenantID)
			handlers.RespondUnprocessable(w, msgMisconfiguredRule)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/availability - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceIDs)

		default:
			h.logger.Error("GET /schedule/availability - failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
