package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/ptr"
)

type fakeAvailabilityRepo struct {
	availability []*domain.WeeklyAvailability
	blocks       []*domain.ScheduleBlock
}

func (f *fakeAvailabilityRepo) ListForDay(_ context.Context, _, _ uuid.UUID, _ domain.DayOfWeek) ([]*domain.WeeklyAvailability, error) {
	return f.availability, nil
}

func (f *fakeAvailabilityRepo) ListBlocksInRange(_ context.Context, _, _ uuid.UUID, _, _ time.Time) ([]*domain.ScheduleBlock, error) {
	return f.blocks, nil
}

type fakeSlotRuleRepo struct {
	rule *domain.SlotRule
}

func (f *fakeSlotRuleRepo) GetActiveByTenant(_ context.Context, _ uuid.UUID) (*domain.SlotRule, error) {
	if f.rule == nil {
		return nil, slotruleRepo.ErrRuleNotFound
	}
	return f.rule, nil
}

type fakeCatalogRepo struct {
	professional *domain.Professional
	services     map[uuid.UUID]*domain.Service
	assignments  map[uuid.UUID]*domain.ServiceAssignment
}

func (f *fakeCatalogRepo) GetProfessional(_ context.Context, _, _ uuid.UUID) (*domain.Professional, error) {
	return f.professional, nil
}

func (f *fakeCatalogRepo) ListServicesByIDs(_ context.Context, _ uuid.UUID, _ []uuid.UUID) (map[uuid.UUID]*domain.Service, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) ListAssignments(_ context.Context, _, _ uuid.UUID, _ []uuid.UUID) (map[uuid.UUID]*domain.ServiceAssignment, error) {
	return f.assignments, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

type fixture struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	req         *Request
}

// newFixture собирает use case: понедельник 09:00-12:00, одна услуга на
// 60 минут, запрос на 2026-03-16, текущее время задолго до даты
func newFixture(t *testing.T) *fixture {
	t.Helper()

	tenantID := uuid.New()
	professionalID := uuid.New()
	serviceID := uuid.New()

	bookingRepo := &fakeBookingRepo{}
	availabilityRepo := &fakeAvailabilityRepo{
		availability: []*domain.WeeklyAvailability{{
			TenantID:       tenantID,
			ProfessionalID: professionalID,
			DayOfWeek:      domain.Monday,
			StartTime:      "09:00",
			EndTime:        "12:00",
			Active:         true,
		}},
	}
	catalog := &fakeCatalogRepo{
		professional: &domain.Professional{ID: professionalID, Name: "Ana Costa", Active: true},
		services: map[uuid.UUID]*domain.Service{
			serviceID: {ID: serviceID, Name: "Corte", Price: 50, DurationMinutes: 60, Active: true},
		},
		assignments: map[uuid.UUID]*domain.ServiceAssignment{
			serviceID: {ServiceID: serviceID, ProfessionalID: professionalID, Active: true},
		},
	}

	uc := NewUseCase(availabilityRepo, &fakeSlotRuleRepo{}, catalog, bookingRepo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	return &fixture{
		uc:          uc,
		bookingRepo: bookingRepo,
		req: &Request{
			TenantID:       tenantID,
			ProfessionalID: professionalID,
			ServiceIDs:     []uuid.UUID{serviceID},
			Date:           time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestExecute_AllSlotsFree(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, 60, resp.TotalDurationMinutes)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, Slot{StartTime: "2026-03-16T09:00:00", EndTime: "2026-03-16T10:00:00", Available: true}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "2026-03-16T10:00:00", EndTime: "2026-03-16T11:00:00", Available: true}, resp.Slots[1])
	assert.Equal(t, Slot{StartTime: "2026-03-16T11:00:00", EndTime: "2026-03-16T12:00:00", Available: true}, resp.Slots[2])
}

func TestExecute_BookedSlotMarkedUnavailable(t *testing.T) {
	f := newFixture(t)

	f.bookingRepo.bookings = []*domain.Booking{{
		ID:        uuid.New(),
		Status:    domain.StatusConfirmed,
		StartTime: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
	}}

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
}

func TestExecute_PastSlotsMarkedUnavailable(t *testing.T) {
	f := newFixture(t)

	// Запрос слотов на сегодня в середине дня
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC)}

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.False(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
}

func TestExecute_NoWorkingHours(t *testing.T) {
	f := newFixture(t)

	// Воскресенье: расписания нет
	f.req.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveProfessional(t *testing.T) {
	f := newFixture(t)

	catalog := f.uc.catalogRepo.(*fakeCatalogRepo)
	catalog.professional.Active = false

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture(t)

	f.req.ServiceIDs = append(f.req.ServiceIDs, uuid.New())

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_MisconfiguredRule(t *testing.T) {
	f := newFixture(t)

	// INTERVAL без шага
	f.uc.slotRuleRepo = &fakeSlotRuleRepo{rule: &domain.SlotRule{
		Mode:   domain.ModeInterval,
		Active: true,
	}}

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrMisconfiguredRule)
}

func TestExecute_IntervalRule(t *testing.T) {
	f := newFixture(t)

	f.uc.slotRuleRepo = &fakeSlotRuleRepo{rule: &domain.SlotRule{
		Mode:            domain.ModeInterval,
		IntervalMinutes: ptr.Ptr(90),
		Active:          true,
	}}

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, "2026-03-16T09:00:00", resp.Slots[0].StartTime)
	assert.Equal(t, "2026-03-16T10:30:00", resp.Slots[1].StartTime)
}
