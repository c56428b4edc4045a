package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	bookingRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/booking"
	catalogRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/catalog"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
	"github.com/mavisrv/MAVI-ScheduleService/internal/schedule"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/ptr"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	slotRuleRepo     SlotRuleRepository
	catalogRepo      CatalogRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	slotRuleRepo SlotRuleRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		slotRuleRepo:     slotRuleRepo,
		catalogRepo:      catalogRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute создает бронирование в статусе REQUESTED.
//
// Запрошенное время должно быть валидным кандидатом слота на эту дату:
// лежать в открытых интервалах, соответствовать активному правилу
// генерации и не пересекаться с активными бронированиями. Проверка и
// вставка выполняются в сериализуемой транзакции с блокировкой
// бронирований дня (FOR UPDATE): из двух конкурентных запросов на один
// слот фиксируется только один, второй получает ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, customer=%s, professional=%s, services=%d, start=%s",
		req.TenantID, req.CustomerID, req.ProfessionalID, len(req.ServiceIDs),
		req.StartTime.Format(domain.LocalDateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateStartTime(req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: start time %s is in the past", req.StartTime.Format(domain.LocalDateTimeFormat))
		return nil, err
	}

	// 2. Профессионал и клиент должны существовать
	professional, err := uc.catalogRepo.GetProfessional(ctx, req.TenantID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !professional.Active {
		uc.logger.Warn("CreateBooking: professional id=%s is inactive", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	customer, err := uc.catalogRepo.GetCustomer(ctx, req.TenantID, req.CustomerID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Снапшот услуг с эффективными ценами и длительностями
	services, err := uc.catalogRepo.ListServicesByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	assignments, err := uc.catalogRepo.ListAssignments(ctx, req.TenantID, req.ProfessionalID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	infos, err := schedule.ComposeServices(req.ServiceIDs, services, assignments)
	if err != nil {
		if errors.Is(err, schedule.ErrServiceUnknown) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, schedule.ErrServiceNotAssigned) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, ErrServiceNotAssigned
		}
		uc.logger.Error("CreateBooking: failed to compose services: %v", err)
		return nil, fmt.Errorf("%w: failed to compose services: %v", ErrInternal, err)
	}

	totalDuration := schedule.TotalDurationMinutes(infos)
	totalPrice := schedule.TotalPrice(infos)

	// 4. Активное правило тенанта, иначе правило по умолчанию
	rule, err := uc.slotRuleRepo.GetActiveByTenant(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, slotruleRepo.ErrRuleNotFound) {
			uc.logger.Error("CreateBooking: failed to get slot rule: %v", err)
			return nil, fmt.Errorf("%w: failed to get slot rule: %v", ErrInternal, err)
		}
		rule = domain.DefaultSlotRule(req.TenantID)
		uc.logger.Info("CreateBooking: no active rule for tenant=%s, using default", req.TenantID)
	}

	buffer := rule.BufferBetweenServicesMinutes
	if buffer < 0 {
		buffer = 0
	}

	var result *domain.Booking

	// 5. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day := domain.DayOfWeekFromTime(req.StartTime.Weekday())
		availability, err := uc.availabilityRepo.ListForDay(txCtx, req.TenantID, req.ProfessionalID, day)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		dayStart := time.Date(req.StartTime.Year(), req.StartTime.Month(), req.StartTime.Day(), 0, 0, 0, 0, req.StartTime.Location())
		blocks, err := uc.availabilityRepo.ListBlocksInRange(txCtx, req.TenantID, req.ProfessionalID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("%w: failed to get schedule blocks: %v", ErrInternal, err)
		}

		intervals, err := schedule.ResolveOpenIntervals(req.StartTime, availability, blocks)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve intervals: %v", ErrInternal, err)
		}

		candidates, err := schedule.GenerateCandidates(intervals, rule, totalDuration)
		if err != nil {
			if errors.Is(err, schedule.ErrMisconfiguredRule) {
				return fmt.Errorf("%w: %v", ErrMisconfiguredRule, err)
			}
			return fmt.Errorf("%w: failed to generate candidates: %v", ErrInternal, err)
		}

		// 5.1. Запрошенное время должно быть одним из кандидатов
		requested := types.NewTimeString(req.StartTime)
		if !containsTime(candidates, requested) {
			uc.logger.Warn("CreateBooking: %s is not a valid slot candidate", requested)
			return ErrSlotNotAvailable
		}

		// 5.2. Активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			TenantID:       req.TenantID,
			ProfessionalID: &req.ProfessionalID,
			Date:           &dayStart,
		}
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflict, err := schedule.HasConflict(requested, totalDuration, bookings, uuid.Nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateBooking: slot %s is already taken", requested)
			return ErrSlotNotAvailable
		}

		// 5.3. Создаем бронирование с денормализацией данных.
		// Конец включает буфер правила: следующий клиент не может быть
		// записан вплотную.
		booking := &domain.Booking{
			TenantID:         req.TenantID,
			CustomerID:       req.CustomerID,
			ProfessionalID:   req.ProfessionalID,
			StartTime:        req.StartTime,
			EndTime:          req.StartTime.Add(time.Duration(totalDuration+buffer) * time.Minute),
			Status:           domain.StatusRequested,
			CustomerName:     customer.Name,
			ProfessionalName: professional.Name,
			Services:         infos,
			TotalPrice:       ptr.Ptr(totalPrice),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурентная вставка того же слота проявляется как конфликт
		// ограничения или serialization failure на commit
		if bookingRepo.IsConflictError(err) {
			uc.logger.Warn("CreateBooking: concurrent booking detected: %v", err)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrMisconfiguredRule) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:               result.ID,
		TenantID:         result.TenantID,
		CustomerID:       result.CustomerID,
		ProfessionalID:   result.ProfessionalID,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		Status:           string(result.Status),
		CustomerName:     result.CustomerName,
		ProfessionalName: result.ProfessionalName,
		Services:         result.Services,
		TotalPrice:       totalPrice,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// containsTime проверяет, что время есть среди кандидатов
func containsTime(candidates []types.TimeString, t types.TimeString) bool {
	for _, c := range candidates {
		if c == t {
			return true
		}
	}
	return false
}
