package delete_schedule_block

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleBlocksService interface {
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
