package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	bookingRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/booking"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking       *domain.Booking
	updatedStatus domain.BookingStatus
	updatedReason *string
	updateCalls   int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, id uuid.UUID) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _, _ uuid.UUID, status domain.BookingStatus, reason *string) error {
	f.updateCalls++
	f.updatedStatus = status
	f.updatedReason = reason

	// Воспроизводим семантику репозитория: статус, причина и метки
	// времени обновляются в той же операции
	f.booking.Status = status
	f.booking.UpdatedAt = time.Now()
	if status == domain.StatusCancelled || status == domain.StatusRejected {
		f.booking.CancellationReason = reason
		now := time.Now()
		f.booking.CancelledAt = &now
	}
	return nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, _, _ uuid.UUID, _, _ time.Time) error {
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             uuid.New(),
		TenantID:       uuid.New(),
		CustomerID:     uuid.New(),
		ProfessionalID: uuid.New(),
		StartTime:      time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
		Status:         status,
	}
}

func TestTransition_ConfirmRequested(t *testing.T) {
	repo := &fakeBookingRepo{booking: newBooking(domain.StatusRequested)}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	resp, err := svc.Transition(context.Background(), repo.booking.TenantID, repo.booking.ID, domain.ActionConfirm, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestTransition_InvalidTransitionRejected(t *testing.T) {
	repo := &fakeBookingRepo{booking: newBooking(domain.StatusRequested)}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	// REQUESTED нельзя сразу завершить
	_, err := svc.Transition(context.Background(), repo.booking.TenantID, repo.booking.ID, domain.ActionComplete, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, repo.updateCalls)
}

func TestTransition_TerminalStatusFrozen(t *testing.T) {
	repo := &fakeBookingRepo{booking: newBooking(domain.StatusCompleted)}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Transition(context.Background(), repo.booking.TenantID, repo.booking.ID, domain.ActionCancel, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_UnknownAction(t *testing.T) {
	repo := &fakeBookingRepo{booking: newBooking(domain.StatusRequested)}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Transition(context.Background(), repo.booking.TenantID, repo.booking.ID, domain.TransitionAction("approve"), nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestTransition_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Transition(context.Background(), uuid.New(), uuid.New(), domain.ActionConfirm, nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestTransition_CancelKeepsReason(t *testing.T) {
	repo := &fakeBookingRepo{booking: newBooking(domain.StatusConfirmed)}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	reason := ptr.Ptr("cliente pediu cancelamento")
	resp, err := svc.Transition(context.Background(), repo.booking.TenantID, repo.booking.ID, domain.ActionCancel, reason)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, repo.updatedReason)
	assert.Equal(t, *reason, *repo.updatedReason)

	// Ответ отражает проставленные базой поля, а не снимок до обновления
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, *reason, *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestTransition_ReasonDroppedForNonCancelActions(t *testing.T) {
	repo := &fakeBookingRepo{booking: newBooking(domain.StatusRequested)}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Transition(context.Background(), repo.booking.TenantID, repo.booking.ID, domain.ActionConfirm, ptr.Ptr("ignorado"))
	require.NoError(t, err)

	assert.Nil(t, repo.updatedReason)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
