package scheduleblocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	CreateBlock(ctx context.Context, block *domain.ScheduleBlock) (*domain.ScheduleBlock, error)
	DeleteBlock(ctx context.Context, tenantID, id uuid.UUID) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetProfessional(ctx context.Context, tenantID, id uuid.UUID) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
