package get_available_slots

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	getAvailableSlots "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/get_available_slots"
)

var (
	errInvalidProfessionalID = errors.New("invalid professionalId")
	errInvalidServiceIDs     = errors.New("invalid serviceIds")
	errInvalidDate           = errors.New("invalid date")
)

// parseQuery разбирает query-параметры запроса доступности.
// serviceIds принимается как список через запятую, порядок сохраняется.
func parseQuery(tenantID uuid.UUID, professionalID, date, serviceIDs string) (*getAvailableSlots.Request, error) {
	profID, err := uuid.Parse(professionalID)
	if err != nil {
		return nil, errInvalidProfessionalID
	}

	parsedDate, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, errInvalidDate
	}

	if serviceIDs == "" {
		return nil, errInvalidServiceIDs
	}
	parts := strings.Split(serviceIDs, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, errInvalidServiceIDs
		}
		ids = append(ids, id)
	}

	return &getAvailableSlots.Request{
		TenantID:       tenantID,
		ProfessionalID: profID,
		ServiceIDs:     ids,
		Date:           parsedDate,
	}, nil
}

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель ответа
type AvailabilityResponse struct {
	Date                 string         `json:"date"`
	ProfessionalID       uuid.UUID      `json:"professionalId"`
	TotalDurationMinutes int            `json:"totalDurationMinutes"`
	Slots                []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
		})
	}

	return &AvailabilityResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		ProfessionalID:       resp.ProfessionalID,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Slots:                slots,
	}
}
