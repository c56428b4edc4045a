package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

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
	GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*domain.Customer, error)
	ListServicesByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.Service, error)
	ListAssignments(ctx context.Context, tenantID, professionalID uuid.UUID, serviceIDs []uuid.UUID) (map[uuid.UUID]*domain.ServiceAssignment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
