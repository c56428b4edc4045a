package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	bookingRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/booking"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
	"github.com/mavisrv/MAVI-ScheduleService/internal/schedule"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	slotRuleRepo     SlotRuleRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	slotRuleRepo SlotRuleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		slotRuleRepo:     slotRuleRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute переносит бронирование на новое время.
//
// Переносить можно только CONFIRMED бронирования. Новое время проходит те
// же проверки, что и при создании (кандидат по правилу, отсутствие
// конфликтов), но само переносимое бронирование из проверки конфликтов
// исключается. Длина занятия (включая буфер) сохраняется, статус не
// меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: tenant=%s, booking=%s, newStart=%s",
		req.TenantID, req.BookingID, req.NewStartTime.Format(domain.LocalDateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !req.NewStartTime.After(now) {
		uc.logger.Warn("RescheduleBooking: new start %s is in the past", req.NewStartTime.Format(domain.LocalDateTimeFormat))
		return nil, ErrTimeInPast
	}

	// 2. Активное правило тенанта, иначе правило по умолчанию
	rule, err := uc.slotRuleRepo.GetActiveByTenant(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, slotruleRepo.ErrRuleNotFound) {
			uc.logger.Error("RescheduleBooking: failed to get slot rule: %v", err)
			return nil, fmt.Errorf("%w: failed to get slot rule: %v", ErrInternal, err)
		}
		rule = domain.DefaultSlotRule(req.TenantID)
	}

	var result *domain.Booking

	// 3. Проверка и перенос в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.TenantID, req.BookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeRescheduled() {
			return fmt.Errorf("%w: status=%s", ErrCannotReschedule, booking.Status)
		}

		totalDuration := booking.TotalDurationMinutes()
		span := booking.EndTime.Sub(booking.StartTime)

		day := domain.DayOfWeekFromTime(req.NewStartTime.Weekday())
		availability, err := uc.availabilityRepo.ListForDay(txCtx, req.TenantID, booking.ProfessionalID, day)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		dayStart := time.Date(req.NewStartTime.Year(), req.NewStartTime.Month(), req.NewStartTime.Day(), 0, 0, 0, 0, req.NewStartTime.Location())
		blocks, err := uc.availabilityRepo.ListBlocksInRange(txCtx, req.TenantID, booking.ProfessionalID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("%w: failed to get schedule blocks: %v", ErrInternal, err)
		}

		intervals, err := schedule.ResolveOpenIntervals(req.NewStartTime, availability, blocks)
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

		requested := types.NewTimeString(req.NewStartTime)
		if !containsTime(candidates, requested) {
			uc.logger.Warn("RescheduleBooking: %s is not a valid slot candidate", requested)
			return ErrSlotNotAvailable
		}

		filter := domain.BookingsFilter{
			TenantID:       req.TenantID,
			ProfessionalID: &booking.ProfessionalID,
			Date:           &dayStart,
		}
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Переносимое бронирование не конфликтует само с собой
		conflict, err := schedule.HasConflict(requested, totalDuration, bookings, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("RescheduleBooking: slot %s is already taken", requested)
			return ErrSlotNotAvailable
		}

		newEnd := req.NewStartTime.Add(span)
		if err := uc.bookingRepo.Reschedule(txCtx, req.TenantID, booking.ID, req.NewStartTime, newEnd); err != nil {
			return err
		}

		booking.StartTime = req.NewStartTime
		booking.EndTime = newEnd
		result = booking
		return nil
	})

	if err != nil {
		if bookingRepo.IsConflictError(err) {
			uc.logger.Warn("RescheduleBooking: concurrent booking detected: %v", err)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, ErrCannotReschedule) || errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrMisconfiguredRule) {
			return nil, err
		}
		uc.logger.Error("RescheduleBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleBooking: booking id=%s moved to %s",
		result.ID, result.StartTime.Format(domain.LocalDateTimeFormat))

	return &Response{
		ID:        result.ID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
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
