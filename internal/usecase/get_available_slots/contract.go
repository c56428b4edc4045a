package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	ListForDay(ctx context.Context, tenantID, professionalID uuid.UUID, day domain.DayOfWeek) ([]*domain.WeeklyAvailability, error)
	ListBlocksInRange(ctx context.Context, tenantID, professionalID uuid.UUID, from, to time.Time) ([]*domain.ScheduleBlock, error)
}

// SlotRuleRepository интерфейс репозитория правил слотов
type SlotRuleRepository interface {
	GetActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.SlotRule, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetProfessional(ctx context.Context, tenantID, id uuid.UUID) (*domain.Professional, error)
	ListServicesByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.Service, error)
	ListAssignments(ctx context.Context, tenantID, professionalID uuid.UUID, serviceIDs []uuid.UUID) (map[uuid.UUID]*domain.ServiceAssignment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
