package schedule

import (
	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

// TimeSlot результат проверки доступности одного кандидата
type TimeSlot struct {
	Start     types.TimeString
	Available bool
}

// MarkAvailability помечает каждый кандидат доступным или занятым по
// пересечению с активными бронированиями профессионала на эту дату.
// Терминальные статусы (COMPLETED, CANCELLED, REJECTED, NO_SHOW) слот
// не занимают.
func MarkAvailability(
	candidates []types.TimeString,
	totalDurationMinutes int,
	bookings []*domain.Booking,
) ([]TimeSlot, error) {
	slots := make([]TimeSlot, 0, len(candidates))
	for _, c := range candidates {
		conflict, err := HasConflict(c, totalDurationMinutes, bookings, uuid.Nil)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{Start: c, Available: !conflict})
	}
	return slots, nil
}

// HasConflict проверяет пересечение слота [start, start+duration) с
// бронированиями. Интервалы полуоткрытые: границы, совпадающие точно,
// пересечением НЕ считаются (бронирование до 10:00 не конфликтует со
// слотом с 10:00).
//
// exclude исключает бронирование из проверки - используется при переносе,
// чтобы бронирование не конфликтовало само с собой.
func HasConflict(
	start types.TimeString,
	totalDurationMinutes int,
	bookings []*domain.Booking,
	exclude uuid.UUID,
) (bool, error) {
	slotEnd, err := start.AddMinutes(totalDurationMinutes)
	if err != nil {
		return false, err
	}

	for _, b := range bookings {
		if !b.Status.Blocks() {
			continue
		}
		if exclude != uuid.Nil && b.ID == exclude {
			continue
		}

		bookingStart := types.NewTimeString(b.StartTime)
		bookingEnd := types.NewTimeString(b.EndTime)
		// Бронирование, заканчивающееся на следующих сутках, занимает
		// время до конца дня
		if b.EndTime.Day() != b.StartTime.Day() {
			bookingEnd = types.TimeString("23:59")
		}

		// Строгие неравенства: пересечение только при реальном наложении
		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(start) {
			return true, nil
		}
	}

	return false, nil
}
