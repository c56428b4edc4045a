package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	catalogRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/catalog"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
	"github.com/mavisrv/MAVI-ScheduleService/internal/schedule"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	availabilityRepo AvailabilityRepository
	slotRuleRepo     SlotRuleRepository
	catalogRepo      CatalogRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	slotRuleRepo SlotRuleRepository,
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		slotRuleRepo:     slotRuleRepo,
		catalogRepo:      catalogRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute вычисляет слоты профессионала на дату для комбинации услуг.
//
// Порядок вычисления:
//  1. Открытые интервалы: недельные окна минус блокировки расписания
//  2. Кандидаты по активному правилу тенанта (или правилу по умолчанию)
//  3. Пометка занятости по активным бронированиям
//
// Возвращаются все кандидаты с признаком доступности, не только свободные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%s, professional=%s, services=%d, date=%s",
		req.TenantID, req.ProfessionalID, len(req.ServiceIDs), req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Профессионал должен существовать и быть активным
	professional, err := uc.catalogRepo.GetProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !professional.Active {
		uc.logger.Warn("GetAvailableSlots: professional id=%s is inactive", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 3. Собираем снапшот услуг с эффективными ценами и длительностями
	services, err := uc.catalogRepo.ListServicesByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	assignments, err := uc.catalogRepo.ListAssignments(ctx, req.TenantID, req.ProfessionalID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	infos, err := schedule.ComposeServices(req.ServiceIDs, services, assignments)
	if err != nil {
		if errors.Is(err, schedule.ErrServiceUnknown) {
			uc.logger.Warn("GetAvailableSlots: %v", err)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, schedule.ErrServiceNotAssigned) {
			uc.logger.Warn("GetAvailableSlots: %v", err)
			return nil, ErrServiceNotAssigned
		}
		uc.logger.Error("GetAvailableSlots: failed to compose services: %v", err)
		return nil, fmt.Errorf("%w: failed to compose services: %v", ErrInternal, err)
	}

	totalDuration := schedule.TotalDurationMinutes(infos)

	// 4. Активное правило тенанта, иначе правило по умолчанию
	rule, err := uc.slotRuleRepo.GetActiveByTenant(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, slotruleRepo.ErrRuleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get slot rule: %v", err)
			return nil, fmt.Errorf("%w: failed to get slot rule: %v", ErrInternal, err)
		}
		rule = domain.DefaultSlotRule(req.TenantID)
		uc.logger.Info("GetAvailableSlots: no active rule for tenant=%s, using default", req.TenantID)
	}

	// 5. Открытые интервалы на дату
	day := domain.DayOfWeekFromTime(req.Date.Weekday())
	availability, err := uc.availabilityRepo.ListForDay(ctx, req.TenantID, req.ProfessionalID, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	blocks, err := uc.availabilityRepo.ListBlocksInRange(ctx, req.TenantID, req.ProfessionalID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule blocks: %v", ErrInternal, err)
	}

	intervals, err := schedule.ResolveOpenIntervals(req.Date, availability, blocks)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve intervals: %v", ErrInternal, err)
	}

	// 6. Кандидаты по правилу
	candidates, err := schedule.GenerateCandidates(intervals, rule, totalDuration)
	if err != nil {
		if errors.Is(err, schedule.ErrMisconfiguredRule) {
			uc.logger.Warn("GetAvailableSlots: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrMisconfiguredRule, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
	}

	// 7. Пометка занятости по активным бронированиям на эту дату
	filter := domain.BookingsFilter{
		TenantID:       req.TenantID,
		ProfessionalID: &req.ProfessionalID,
		Date:           &req.Date,
	}
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	marked, err := schedule.MarkAvailability(candidates, totalDuration, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to mark availability: %v", err)
		return nil, fmt.Errorf("%w: failed to mark availability: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	slots := make([]Slot, 0, len(marked))
	for _, m := range marked {
		start, err := m.Start.OnDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to resolve slot time: %v", ErrInternal, err)
		}
		available := m.Available
		// Слоты, начало которых уже прошло, забронировать нельзя
		if !start.After(now) {
			available = false
		}
		slots = append(slots, Slot{
			StartTime: start.Format(domain.LocalDateTimeFormat),
			EndTime:   start.Add(time.Duration(totalDuration) * time.Minute).Format(domain.LocalDateTimeFormat),
			Available: available,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%s on %s",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                 req.Date,
		ProfessionalID:       req.ProfessionalID,
		TotalDurationMinutes: totalDuration,
		Slots:                slots,
	}, nil
}
