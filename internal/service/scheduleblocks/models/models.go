package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidRange возвращается, когда конец блокировки не позже начала
	ErrInvalidRange = errors.New("end time must be after start time")
)

// CreateScheduleBlockRequest запрос на создание блокировки расписания
// (отпуск, перерыв, затянувшийся визит). Времена в локальном ISO 8601
// без смещения.
type CreateScheduleBlockRequest struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    *string `json:"reason,omitempty"`
}

// ToDomain валидирует запрос и конвертирует в domain модель
func (r *CreateScheduleBlockRequest) ToDomain(tenantID, professionalID uuid.UUID) (*domain.ScheduleBlock, error) {
	start, err := time.Parse(domain.LocalDateTimeFormat, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, r.StartTime)
	}

	end, err := time.Parse(domain.LocalDateTimeFormat, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, r.EndTime)
	}

	if !end.After(start) {
		return nil, fmt.Errorf("%w: %s >= %s", ErrInvalidRange, r.StartTime, r.EndTime)
	}

	return &domain.ScheduleBlock{
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		StartTime:      start,
		EndTime:        end,
		Reason:         r.Reason,
	}, nil
}

// ScheduleBlockResponse ответ с данными блокировки расписания
type ScheduleBlockResponse struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenantId"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FromDomainScheduleBlock конвертирует domain модель в DTO
func FromDomainScheduleBlock(b *domain.ScheduleBlock) *ScheduleBlockResponse {
	if b == nil {
		return nil
	}

	return &ScheduleBlockResponse{
		ID:             b.ID,
		TenantID:       b.TenantID,
		ProfessionalID: b.ProfessionalID,
		StartTime:      b.StartTime.Format(domain.LocalDateTimeFormat),
		EndTime:        b.EndTime.Format(domain.LocalDateTimeFormat),
		Reason:         b.Reason,
		CreatedAt:      b.CreatedAt,
	}
}
