package slotrules

import (
	"context"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// SlotRuleRepository интерфейс репозитория правил слотов
type SlotRuleRepository interface {
	GetActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.SlotRule, error)
	Create(ctx context.Context, rule *domain.SlotRule) (*domain.SlotRule, error)
	DeactivateByTenant(ctx context.Context, tenantID uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
