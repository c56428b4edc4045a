package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
