// Package schedule computes bookable time slots for a professional on a
// date: open working intervals, candidate generation per slot rule mode and
// conflict marking against existing bookings. All computation is in tenant
// local wall-clock time at minute precision; the package holds no state and
// every function recomputes from its inputs.
package schedule

import (
	"sort"
	"time"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

const minutesPerDay = 24 * 60

// Interval is a half-open [Start, End) span of wall-clock time in which a
// professional is working and not blocked.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// minuteSpan внутреннее представление интервала в минутах от полуночи
type minuteSpan struct {
	start int
	end   int
}

// ResolveOpenIntervals вычисляет открытые интервалы профессионала на дату:
// объединение активных окон WeeklyAvailability на этот день недели минус
// все пересекающие дату ScheduleBlock. Отсутствие окон - не ошибка, а
// валидный пустой результат (профессионал в этот день не работает).
func ResolveOpenIntervals(
	date time.Time,
	availability []*domain.WeeklyAvailability,
	blocks []*domain.ScheduleBlock,
) ([]Interval, error) {
	day := domain.DayOfWeekFromTime(date.Weekday())

	spans := make([]minuteSpan, 0, len(availability))
	for _, a := range availability {
		if !a.Active || a.DayOfWeek != day {
			continue
		}
		start, err := a.StartTime.Minutes()
		if err != nil {
			return nil, err
		}
		end, err := a.EndTime.Minutes()
		if err != nil {
			return nil, err
		}
		// Окно с нулевой или отрицательной длиной ничего не открывает
		if end <= start {
			continue
		}
		spans = append(spans, minuteSpan{start: start, end: end})
	}

	// Пересекающиеся смены не должны появляться, но и не должны ломать
	// расчёт - объединяем их
	spans = mergeSpans(spans)

	for _, b := range blocks {
		blocked, ok := clipBlockToDate(b, date)
		if !ok {
			continue
		}
		spans = subtractSpan(spans, blocked)
	}

	result := make([]Interval, 0, len(spans))
	for _, s := range spans {
		start, err := types.NewTimeStringFromMinutes(s.start)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromMinutes(s.end)
		if err != nil {
			// Интервал до конца суток: 24:00 не представимо в TimeString,
			// усекаем до 23:59
			end, err = types.NewTimeStringFromMinutes(minutesPerDay - 1)
			if err != nil {
				return nil, err
			}
		}
		result = append(result, Interval{Start: start, End: end})
	}
	return result, nil
}

// mergeSpans сортирует и объединяет пересекающиеся/смежные интервалы
func mergeSpans(spans []minuteSpan) []minuteSpan {
	if len(spans) == 0 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	merged := make([]minuteSpan, 0, len(spans))
	current := spans[0]
	for _, s := range spans[1:] {
		if s.start <= current.end {
			if s.end > current.end {
				current.end = s.end
			}
			continue
		}
		merged = append(merged, current)
		current = s
	}
	return append(merged, current)
}

// clipBlockToDate приводит блок к минутам указанной даты.
// Возвращает false, если блок не пересекает дату.
func clipBlockToDate(b *domain.ScheduleBlock, date time.Time) (minuteSpan, bool) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	if !b.StartTime.Before(dayEnd) || !b.EndTime.After(dayStart) {
		return minuteSpan{}, false
	}

	start := 0
	if b.StartTime.After(dayStart) {
		start = b.StartTime.Hour()*60 + b.StartTime.Minute()
	}
	end := minutesPerDay
	if b.EndTime.Before(dayEnd) {
		end = b.EndTime.Hour()*60 + b.EndTime.Minute()
	}
	if end <= start {
		return minuteSpan{}, false
	}
	return minuteSpan{start: start, end: end}, true
}

// subtractSpan вычитает blocked из каждого интервала: блок в середине смены
// разрезает её на две, блок с краю усекает, полный охват удаляет смену
func subtractSpan(spans []minuteSpan, blocked minuteSpan) []minuteSpan {
	result := make([]minuteSpan, 0, len(spans)+1)
	for _, s := range spans {
		// Нет пересечения
		if blocked.end <= s.start || blocked.start >= s.end {
			result = append(result, s)
			continue
		}
		if blocked.start > s.start {
			result = append(result, minuteSpan{start: s.start, end: blocked.start})
		}
		if blocked.end < s.end {
			result = append(result, minuteSpan{start: blocked.end, end: s.end})
		}
	}
	return result
}
