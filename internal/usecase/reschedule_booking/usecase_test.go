package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	bookingRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking       *domain.Booking
	others        []*domain.Booking
	rescheduledTo *time.Time
	newEnd        *time.Time
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, id uuid.UUID) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	all := append([]*domain.Booking{}, f.others...)
	if f.booking != nil {
		all = append(all, f.booking)
	}
	return all, nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, _, _ uuid.UUID, startTime, endTime time.Time) error {
	f.rescheduledTo = &startTime
	f.newEnd = &endTime
	return nil
}

type fakeAvailabilityRepo struct {
	availability []*domain.WeeklyAvailability
}

func (f *fakeAvailabilityRepo) ListForDay(_ context.Context, _, _ uuid.UUID, _ domain.DayOfWeek) ([]*domain.WeeklyAvailability, error) {
	return f.availability, nil
}

func (f *fakeAvailabilityRepo) ListBlocksInRange(_ context.Context, _, _ uuid.UUID, _, _ time.Time) ([]*domain.ScheduleBlock, error) {
	return nil, nil
}

type fakeSlotRuleRepo struct {
	rule *domain.SlotRule
}

func (f *fakeSlotRuleRepo) GetActiveByTenant(_ context.Context, tenantID uuid.UUID) (*domain.SlotRule, error) {
	if f.rule == nil {
		return domain.DefaultSlotRule(tenantID), nil
	}
	return f.rule, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// newFixture собирает use case с CONFIRMED бронированием на 60 минут
// (10:00-11:00 на 2026-03-16) и расписанием 09:00-18:00
func newFixture(t *testing.T, status domain.BookingStatus) (*UseCase, *fakeBookingRepo, *Request) {
	t.Helper()

	tenantID := uuid.New()
	professionalID := uuid.New()

	booking := &domain.Booking{
		ID:             uuid.New(),
		TenantID:       tenantID,
		ProfessionalID: professionalID,
		StartTime:      time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
		Status:         status,
		Services: []domain.BookingServiceInfo{
			{ServiceID: uuid.New(), ServiceName: "Corte", DurationMinutes: 60},
		},
	}

	repo := &fakeBookingRepo{booking: booking}
	availabilityRepo := &fakeAvailabilityRepo{
		availability: []*domain.WeeklyAvailability{{
			TenantID:       tenantID,
			ProfessionalID: professionalID,
			DayOfWeek:      domain.Monday,
			StartTime:      "09:00",
			EndTime:        "18:00",
			Active:         true,
		}},
	}

	uc := NewUseCase(repo, availabilityRepo, &fakeSlotRuleRepo{}, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)}

	return uc, repo, &Request{
		TenantID:     tenantID,
		BookingID:    booking.ID,
		NewStartTime: time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
	}
}

func TestExecute_ReschedulesConfirmedBooking(t *testing.T) {
	uc, repo, req := newFixture(t, domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req.NewStartTime, resp.StartTime)
	// Длина занятия сохраняется
	assert.Equal(t, req.NewStartTime.Add(time.Hour), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.NotNil(t, repo.rescheduledTo)
	assert.Equal(t, req.NewStartTime, *repo.rescheduledTo)
}

func TestExecute_PreservesBufferInSpan(t *testing.T) {
	uc, repo, req := newFixture(t, domain.StatusConfirmed)

	// Бронирование создано с буфером 15 минут: занимает 10:00-11:15
	repo.booking.EndTime = time.Date(2026, 3, 16, 11, 15, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req.NewStartTime.Add(75*time.Minute), resp.EndTime)
}

func TestExecute_OnlyConfirmedCanBeRescheduled(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusRequested, domain.StatusInProgress, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusRejected, domain.StatusNoShow,
	} {
		uc, repo, req := newFixture(t, status)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrCannotReschedule, "status %s", status)
		assert.Nil(t, repo.rescheduledTo)
	}
}

func TestExecute_SelfConflictExcluded(t *testing.T) {
	uc, _, req := newFixture(t, domain.StatusConfirmed)

	// Перенос на время, пересекающееся с текущим слотом самого бронирования
	req.NewStartTime = time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.NewStartTime, resp.StartTime)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	uc, repo, req := newFixture(t, domain.StatusConfirmed)

	repo.others = []*domain.Booking{{
		ID:        uuid.New(),
		Status:    domain.StatusConfirmed,
		StartTime: time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 16, 15, 0, 0, 0, time.UTC),
	}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.rescheduledTo)
}

func TestExecute_RejectsNonCandidateTime(t *testing.T) {
	uc, _, req := newFixture(t, domain.StatusConfirmed)

	req.NewStartTime = time.Date(2026, 3, 16, 14, 25, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_RejectsPastTime(t *testing.T) {
	uc, _, req := newFixture(t, domain.StatusConfirmed)

	req.NewStartTime = time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, _, req := newFixture(t, domain.StatusConfirmed)

	req.BookingID = uuid.New()

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
