package get_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	bookingsService "github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings/models"
)

const (
	msgInvalidTenant = "tenant inválido"
	msgInvalidFilter = "parâmetros de filtro inválidos"
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

// Handle GET /api/v1/bookings
//
// Query параметры (все опциональные):
//   - professionalId: UUID профессионала
//   - customerId: UUID клиента
//   - date: дата начала (YYYY-MM-DD)
//   - status: статус бронирования
//   - includeTerminal: включить терминальные статусы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidTenant)
		return
	}

	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		TenantID:        tenantID,
		IncludeTerminal: query.Get("includeTerminal") == "true",
	}

	if v := query.Get("professionalId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.ProfessionalID = &id
	}

	if v := query.Get("customerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.CustomerID = &id
	}

	if v := query.Get("date"); v != "" {
		req.Date = &v
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - invalid filter: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
