package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested  BookingStatus = "REQUESTED"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
	StatusRejected   BookingStatus = "REJECTED"
	StatusNoShow     BookingStatus = "NO_SHOW"
)

// allowedTransitions описывает граф переходов статусов.
// REQUESTED → CONFIRMED | REJECTED
// CONFIRMED → IN_PROGRESS | CANCELLED | NO_SHOW
// IN_PROGRESS → COMPLETED
// Терминальные статусы переходов не имеют.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusRequested:  {StatusConfirmed, StatusRejected},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted},
}

// IsValid returns true if the status is one of the defined values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusRejected, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal returns true if no transition is defined from the status
func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Blocks returns true if a booking in this status occupies its time range
// for slot availability purposes
func (s BookingStatus) Blocks() bool {
	return s == StatusRequested || s == StatusConfirmed || s == StatusInProgress
}

// BookingServiceInfo is the per-service snapshot inside a booking.
// Price and duration are copied at creation time so later catalog edits
// do not affect historical bookings. DisplayOrder preserves the order the
// services were requested in.
type BookingServiceInfo struct {
	ServiceID       uuid.UUID `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	DisplayOrder    int       `json:"displayOrder"`
}

// Booking represents a customer appointment with a professional
type Booking struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	CustomerID     uuid.UUID
	ProfessionalID uuid.UUID

	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	// Denormalized data for history
	CustomerName     string
	ProfessionalName string
	Services         []BookingServiceInfo
	TotalPrice       *float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo returns true if the transition from the current status
// to next is permitted
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanBeRescheduled returns true if the booking may be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.Blocks()
}

// TotalDurationMinutes возвращает суммарную длительность услуг бронирования
// (без буфера - он хранится неявно в EndTime)
func (b *Booking) TotalDurationMinutes() int {
	total := 0
	for _, s := range b.Services {
		total += s.DurationMinutes
	}
	return total
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	TenantID        uuid.UUID      // Обязательный параметр
	ProfessionalID  *uuid.UUID     // Фильтр по профессионалу (опционально)
	CustomerID      *uuid.UUID     // Фильтр по клиенту (опционально)
	Date            *time.Time     // Бронирования, начинающиеся в этот день (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeTerminal bool           // Включать ли терминальные статусы
}

// TransitionAction is a lifecycle operation requested by the caller
type TransitionAction string

const (
	ActionConfirm  TransitionAction = "confirm"
	ActionStart    TransitionAction = "start"
	ActionComplete TransitionAction = "complete"
	ActionCancel   TransitionAction = "cancel"
	ActionReject   TransitionAction = "reject"
	ActionNoShow   TransitionAction = "no-show"
)

// TargetStatus maps an action to the status it requests
func (a TransitionAction) TargetStatus() (BookingStatus, bool) {
	switch a {
	case ActionConfirm:
		return StatusConfirmed, true
	case ActionStart:
		return StatusInProgress, true
	case ActionComplete:
		return StatusCompleted, true
	case ActionCancel:
		return StatusCancelled, true
	case ActionReject:
		return StatusRejected, true
	case ActionNoShow:
		return StatusNoShow, true
	default:
		return "", false
	}
}

// AcceptsReason returns true if the action carries an optional free-text reason
func (a TransitionAction) AcceptsReason() bool {
	return a == ActionCancel || a == ActionReject
}
