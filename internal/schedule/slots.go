package schedule

import (
	"fmt"
	"sort"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

// GenerateCandidates генерирует упорядоченный список времён начала слотов
// внутри открытых интервалов по активному правилу тенанта.
//
// Во всех режимах кандидат должен вмещать длительность услуг плюс буфер
// внутри одного интервала. Исключение - последний слот интервала: для него
// хвостовой буфер не резервируется (после закрытия смены простаивать нечему),
// достаточно, чтобы влезла сама услуга.
//
// Результат отсортирован по возрастанию и не содержит дубликатов.
func GenerateCandidates(
	intervals []Interval,
	rule *domain.SlotRule,
	totalDurationMinutes int,
) ([]types.TimeString, error) {
	if totalDurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	buffer := rule.BufferBetweenServicesMinutes
	if buffer < 0 {
		buffer = 0
	}

	switch rule.Mode {
	case domain.ModeFixed:
		return generateFixed(intervals, rule.FixedTimes, totalDurationMinutes, buffer)
	case domain.ModeInterval:
		if rule.IntervalMinutes == nil || *rule.IntervalMinutes <= 0 {
			return nil, fmt.Errorf("%w: INTERVAL mode requires positive intervalMinutes", ErrMisconfiguredRule)
		}
		return generateStepped(intervals, *rule.IntervalMinutes, totalDurationMinutes, buffer)
	case domain.ModeServiceDuration:
		// Back-to-back: шаг равен полной занимаемой длительности
		return generateStepped(intervals, totalDurationMinutes+buffer, totalDurationMinutes, buffer)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrMisconfiguredRule, rule.Mode)
	}
}

// generateStepped шагает по каждому интервалу от его начала с шагом step
func generateStepped(intervals []Interval, step, duration, buffer int) ([]types.TimeString, error) {
	candidates := make([]types.TimeString, 0)

	for _, ival := range intervals {
		start, err := ival.Start.Minutes()
		if err != nil {
			return nil, err
		}
		end, err := ival.End.Minutes()
		if err != nil {
			return nil, err
		}

		for t := start; t < end; t += step {
			if t+duration+buffer <= end {
				ts, err := types.NewTimeStringFromMinutes(t)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, ts)
				continue
			}
			// Последний слот интервала: услуга помещается, буфер
			// переваливает за закрытие - допускаем без буфера
			if t+duration <= end {
				ts, err := types.NewTimeStringFromMinutes(t)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, ts)
			}
			break
		}
	}

	return candidates, nil
}

// generateFixed оставляет только те фиксированные времена, которые целиком
// помещаются в один из открытых интервалов
func generateFixed(intervals []Interval, fixedTimes []types.TimeString, duration, buffer int) ([]types.TimeString, error) {
	times := make([]int, 0, len(fixedTimes))
	seen := make(map[int]struct{}, len(fixedTimes))
	for _, ft := range fixedTimes {
		m, err := ft.Minutes()
		if err != nil {
			return nil, err
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		times = append(times, m)
	}
	sort.Ints(times)

	candidates := make([]types.TimeString, 0, len(times))

	for _, ival := range intervals {
		start, err := ival.Start.Minutes()
		if err != nil {
			return nil, err
		}
		end, err := ival.End.Minutes()
		if err != nil {
			return nil, err
		}

		// Фиксированные времена, попадающие в этот интервал вместе с услугой
		inInterval := make([]int, 0)
		for _, t := range times {
			if t >= start && t+duration <= end {
				inInterval = append(inInterval, t)
			}
		}

		for i, t := range inInterval {
			last := i == len(inInterval)-1
			if t+duration+buffer <= end || last {
				ts, err := types.NewTimeStringFromMinutes(t)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, ts)
			}
		}
	}

	return candidates, nil
}
