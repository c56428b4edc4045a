package get_slot_rule

import (
	"context"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/service/slotrules/models"
)

type SlotRulesService interface {
	GetActive(ctx context.Context, tenantID uuid.UUID) (*models.SlotRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
