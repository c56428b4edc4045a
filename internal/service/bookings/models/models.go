package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// TransitionRequest запрос на переход статуса бронирования
type TransitionRequest struct {
	// Reason произвольный текст причины, принимается только для
	// cancel и reject
	Reason *string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований тенанта
type ListBookingsRequest struct {
	TenantID        uuid.UUID
	ProfessionalID  *uuid.UUID
	CustomerID      *uuid.UUID
	Date            *string // "2026-03-15"
	Status          *string
	IncludeTerminal bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		TenantID:        r.TenantID,
		ProfessionalID:  r.ProfessionalID,
		CustomerID:      r.CustomerID,
		IncludeTerminal: r.IncludeTerminal,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования.
// Метки времени сериализуются в локальном ISO 8601 без смещения.
type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenantId"`
	CustomerID     uuid.UUID `json:"customerId"`
	ProfessionalID uuid.UUID `json:"professionalId"`

	StartTime string `json:"startTime"` // "2026-03-15T10:00:00"
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`

	// Денормализованные данные
	CustomerName     string                      `json:"customerName"`
	ProfessionalName string                      `json:"professionalName"`
	Services         []domain.BookingServiceInfo `json:"services"`
	TotalPrice       *float64                    `json:"totalPrice,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		TenantID:           b.TenantID,
		CustomerID:         b.CustomerID,
		ProfessionalID:     b.ProfessionalID,
		StartTime:          b.StartTime.Format(domain.LocalDateTimeFormat),
		EndTime:            b.EndTime.Format(domain.LocalDateTimeFormat),
		Status:             string(b.Status),
		CustomerName:       b.CustomerName,
		ProfessionalName:   b.ProfessionalName,
		Services:           b.Services,
		TotalPrice:         b.TotalPrice,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if resp.Services == nil {
		resp.Services = []domain.BookingServiceInfo{}
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(domain.LocalDateTimeFormat)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
