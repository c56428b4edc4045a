package reschedule_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	rescheduleBooking "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewStartTime string `json:"newStartTime"` // "2026-03-16T14:00:00"
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    string    `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(tenantID, bookingID uuid.UUID) (*rescheduleBooking.Request, error) {
	newStart, err := time.Parse(domain.LocalDateTimeFormat, r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		TenantID:     tenantID,
		BookingID:    bookingID,
		NewStartTime: newStart,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:        resp.ID,
		StartTime: resp.StartTime.Format(domain.LocalDateTimeFormat),
		EndTime:   resp.EndTime.Format(domain.LocalDateTimeFormat),
		Status:    resp.Status,
	}
}
