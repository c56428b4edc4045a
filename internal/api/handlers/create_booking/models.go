package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	createBooking "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID     uuid.UUID   `json:"customerId"`
	ProfessionalID uuid.UUID   `json:"professionalId"`
	ServiceIDs     []uuid.UUID `json:"serviceIds"`
	StartTime      string      `json:"startTime"` // "2026-03-15T10:00:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenantId"`
	CustomerID     uuid.UUID `json:"customerId"`
	ProfessionalID uuid.UUID `json:"professionalId"`

	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`

	CustomerName     string                      `json:"customerName"`
	ProfessionalName string                      `json:"professionalName"`
	Services         []domain.BookingServiceInfo `json:"services"`
	TotalPrice       float64                     `json:"totalPrice"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID uuid.UUID) (*createBooking.Request, error) {
	startTime, err := time.Parse(domain.LocalDateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantID:       tenantID,
		CustomerID:     r.CustomerID,
		ProfessionalID: r.ProfessionalID,
		ServiceIDs:     r.ServiceIDs,
		StartTime:      startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		TenantID:         resp.TenantID,
		CustomerID:       resp.CustomerID,
		ProfessionalID:   resp.ProfessionalID,
		StartTime:        resp.StartTime.Format(domain.LocalDateTimeFormat),
		EndTime:          resp.EndTime.Format(domain.LocalDateTimeFormat),
		Status:           resp.Status,
		CustomerName:     resp.CustomerName,
		ProfessionalName: resp.ProfessionalName,
		Services:         resp.Services,
		TotalPrice:       resp.TotalPrice,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
