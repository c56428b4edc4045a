package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

// DayOfWeek enumerated day of week for recurring availability
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// DayOfWeekFromTime конвертирует time.Weekday в DayOfWeek
func DayOfWeekFromTime(d time.Weekday) DayOfWeek {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsValid returns true for one of the seven defined values
func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// WeeklyAvailability is a recurring working-hours window of a professional.
// Multiple rows per day are permitted (split shifts); overlaps are reconciled
// by the schedule resolver, not here.
type WeeklyAvailability struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	DayOfWeek      DayOfWeek
	StartTime      types.TimeString
	EndTime        types.TimeString
	Active         bool
	CreatedAt      time.Time
}

// ScheduleBlock is a one-off unavailability window (vacation, overrun).
// Always takes precedence over WeeklyAvailability.
type ScheduleBlock struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProfessionalID uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Reason         *string
	CreatedAt      time.Time
}
