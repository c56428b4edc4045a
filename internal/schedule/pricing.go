package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// ComposeServices собирает снапшот услуг бронирования в порядке запроса,
// применяя переопределения цены/длительности из назначений профессионала.
// Услуга без назначения - невалидная комбинация: ошибка до генерации слотов.
func ComposeServices(
	serviceIDs []uuid.UUID,
	services map[uuid.UUID]*domain.Service,
	assignments map[uuid.UUID]*domain.ServiceAssignment,
) ([]domain.BookingServiceInfo, error) {
	infos := make([]domain.BookingServiceInfo, 0, len(serviceIDs))

	for i, id := range serviceIDs {
		svc, ok := services[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrServiceUnknown, id)
		}
		assignment, ok := assignments[id]
		if !ok || !assignment.Active {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotAssigned, id)
		}

		infos = append(infos, domain.BookingServiceInfo{
			ServiceID:       id,
			ServiceName:     svc.Name,
			Price:           assignment.EffectivePrice(svc),
			DurationMinutes: assignment.EffectiveDurationMinutes(svc),
			DisplayOrder:    i,
		})
	}

	return infos, nil
}

// TotalDurationMinutes суммарная эффективная длительность услуг.
// Длительность бронирования - сумма, не максимум: услуги выполняются
// последовательно.
func TotalDurationMinutes(infos []domain.BookingServiceInfo) int {
	total := 0
	for _, info := range infos {
		total += info.DurationMinutes
	}
	return total
}

// TotalPrice суммарная эффективная цена услуг
func TotalPrice(infos []domain.BookingServiceInfo) float64 {
	total := 0.0
	for _, info := range infos {
		total += info.Price
	}
	return total
}
