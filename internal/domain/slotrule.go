package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

// SlotMode определяет способ генерации кандидатов слотов
type SlotMode string

const (
	// ModeFixed слоты только в заранее заданные моменты времени (fixedTimes)
	ModeFixed SlotMode = "FIXED"
	// ModeInterval слоты с фиксированным шагом intervalMinutes от начала окна
	ModeInterval SlotMode = "INTERVAL"
	// ModeServiceDuration слоты вплотную друг к другу, шаг равен длительности услуги
	ModeServiceDuration SlotMode = "SERVICE_DURATION"
)

// IsValid returns true for one of the defined modes
func (m SlotMode) IsValid() bool {
	return m == ModeFixed || m == ModeInterval || m == ModeServiceDuration
}

// SlotRule is the tenant-scoped slotting policy. At most one rule is active
// per tenant at a time; mode-dependent fields are populated per mode only:
// IntervalMinutes for INTERVAL, FixedTimes for FIXED. Buffer applies in all
// modes as a single flat addend to the booking duration.
type SlotRule struct {
	ID                           uuid.UUID
	TenantID                     uuid.UUID
	Mode                         SlotMode
	IntervalMinutes              *int
	FixedTimes                   []types.TimeString
	BufferBetweenServicesMinutes int
	Active                       bool
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

// DefaultSlotRule правило по умолчанию при отсутствии активного:
// back-to-back генерация без буфера
func DefaultSlotRule(tenantID uuid.UUID) *SlotRule {
	return &SlotRule{
		TenantID: tenantID,
		Mode:     ModeServiceDuration,
		Active:   true,
	}
}
