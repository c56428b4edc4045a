package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	bookingRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/booking"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование тенанта по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for tenant=%s", id, tenantID)

	booking, err := s.bookingRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования тенанта с гибкой фильтрацией.
// Поддерживает фильтрацию по профессионалу, клиенту, дате и статусу.
// Без явного статуса терминальные бронирования по умолчанию скрыты.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for tenant=%s", req.TenantID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for tenant=%s", len(bookings), req.TenantID)
	return models.FromDomainBookingList(bookings), nil
}

// Transition выполняет переход статуса бронирования.
//
// Допустимые переходы:
//
//	REQUESTED → CONFIRMED (confirm) | REJECTED (reject)
//	CONFIRMED → IN_PROGRESS (start) | CANCELLED (cancel) | NO_SHOW (no-show)
//	IN_PROGRESS → COMPLETED (complete)
//
// Любой другой переход отклоняется с ErrInvalidTransition. Причина
// сохраняется только для cancel и reject; для остальных действий
// игнорируется. Выполняется в транзакции с блокировкой строки, чтобы
// конкурентные переходы не перескочили через граф.
func (s *Service) Transition(ctx context.Context, tenantID, id uuid.UUID, action domain.TransitionAction, reason *string) (*models.BookingResponse, error) {
	s.logger.Info("Transition: booking id=%s action=%s tenant=%s", id, action, tenantID)

	target, ok := action.TargetStatus()
	if !ok {
		s.logger.Warn("Transition: unknown action=%s for booking id=%s", action, id)
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if !action.AcceptsReason() {
		reason = nil
	}

	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, tenantID, id)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, tenantID, id, target, reason); err != nil {
			return err
		}

		// Перечитываем строку: cancelled_at и updated_at проставляются
		// базой при обновлении
		booking, err = s.bookingRepo.GetByID(txCtx, tenantID, id)
		return err
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Transition: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("Transition: booking id=%s rejected: %v", id, err)
			return nil, err
		}
		s.logger.Error("Transition: failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: booking id=%s moved to status=%s", id, target)
	return models.FromDomainBooking(booking), nil
}
