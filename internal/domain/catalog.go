package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable service from the tenant catalog
type Service struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
}

// Professional is a staff member performing services
type Professional struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

// Customer is a client record, read here only for booking denormalization
type Customer struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

// ServiceAssignment links a professional to a service and carries optional
// price/duration overrides. The assignment gates which services the
// professional may perform.
type ServiceAssignment struct {
	ID                    uuid.UUID
	TenantID              uuid.UUID
	ProfessionalID        uuid.UUID
	ServiceID             uuid.UUID
	CustomPrice           *float64
	CustomDurationMinutes *int
	Active                bool
	CreatedAt             time.Time
}

// EffectivePrice возвращает цену с учетом переопределения
func (a *ServiceAssignment) EffectivePrice(s *Service) float64 {
	if a.CustomPrice != nil {
		return *a.CustomPrice
	}
	return s.Price
}

// EffectiveDurationMinutes возвращает длительность с учетом переопределения
func (a *ServiceAssignment) EffectiveDurationMinutes(s *Service) int {
	if a.CustomDurationMinutes != nil {
		return *a.CustomDurationMinutes
	}
	return s.DurationMinutes
}
