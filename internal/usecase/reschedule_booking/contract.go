package reschedule_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Reschedule(ctx context.Context, tenantID, id uuid.UUID, startTime, endTime time.Time) error
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
