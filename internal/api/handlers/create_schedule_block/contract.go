package create_schedule_block

import (
	"context"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/service/scheduleblocks/models"
)

type ScheduleBlocksService interface {
	Create(ctx context.Context, tenantID, professionalID uuid.UUID, req *models.CreateScheduleBlockRequest) (*models.ScheduleBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
