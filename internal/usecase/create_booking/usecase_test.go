package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

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

func (f *fakeSlotRuleRepo) GetActiveByTenant(_ context.Context, tenantID uuid.UUID) (*domain.SlotRule, error) {
	if f.rule == nil {
		return nil, slotruleRepo.ErrRuleNotFound
	}
	return f.rule, nil
}

type fakeCatalogRepo struct {
	professional *domain.Professional
	customer     *domain.Customer
	services     map[uuid.UUID]*domain.Service
	assignments  map[uuid.UUID]*domain.ServiceAssignment
}

func (f *fakeCatalogRepo) GetProfessional(_ context.Context, _, _ uuid.UUID) (*domain.Professional, error) {
	return f.professional, nil
}

func (f *fakeCatalogRepo) GetCustomer(_ context.Context, _, _ uuid.UUID) (*domain.Customer, error) {
	return f.customer, nil
}

func (f *fakeCatalogRepo) ListServicesByIDs(_ context.Context, _ uuid.UUID, _ []uuid.UUID) (map[uuid.UUID]*domain.Service, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) ListAssignments(_ context.Context, _, _ uuid.UUID, _ []uuid.UUID) (map[uuid.UUID]*domain.ServiceAssignment, error) {
	return f.assignments, nil
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

type fixture struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	tenantID    uuid.UUID
	serviceID   uuid.UUID
	req         *Request
}

// newFixture собирает use case с работающим понедельником 09:00-18:00,
// одной услугой на 60 минут и запросом на 2026-03-16 10:00
func newFixture(t *testing.T) *fixture {
	t.Helper()

	tenantID := uuid.New()
	professionalID := uuid.New()
	customerID := uuid.New()
	serviceID := uuid.New()

	bookingRepo := &fakeBookingRepo{}
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
	catalog := &fakeCatalogRepo{
		professional: &domain.Professional{ID: professionalID, Name: "Ana Costa", Active: true},
		customer:     &domain.Customer{ID: customerID, Name: "João Silva", Active: true},
		services: map[uuid.UUID]*domain.Service{
			serviceID: {ID: serviceID, Name: "Corte", Price: 50, DurationMinutes: 60, Active: true},
		},
		assignments: map[uuid.UUID]*domain.ServiceAssignment{
			serviceID: {ServiceID: serviceID, ProfessionalID: professionalID, Active: true},
		},
	}

	uc := NewUseCase(bookingRepo, availabilityRepo, &fakeSlotRuleRepo{}, catalog, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)}

	return &fixture{
		uc:          uc,
		bookingRepo: bookingRepo,
		tenantID:    tenantID,
		serviceID:   serviceID,
		req: &Request{
			TenantID:       tenantID,
			CustomerID:     customerID,
			ProfessionalID: professionalID,
			ServiceIDs:     []uuid.UUID{serviceID},
			StartTime:      time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestExecute_CreatesRequestedBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRequested), resp.Status)
	assert.Equal(t, f.req.StartTime, resp.StartTime)
	assert.Equal(t, f.req.StartTime.Add(60*time.Minute), resp.EndTime)
	assert.Equal(t, "João Silva", resp.CustomerName)
	assert.Equal(t, "Ana Costa", resp.ProfessionalName)
	assert.Equal(t, 50.0, resp.TotalPrice)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, f.serviceID, resp.Services[0].ServiceID)

	require.NotNil(t, f.bookingRepo.created)
	assert.Equal(t, domain.StatusRequested, f.bookingRepo.created.Status)
}

func TestExecute_EndTimeIncludesBuffer(t *testing.T) {
	f := newFixture(t)

	f.uc.slotRuleRepo = &fakeSlotRuleRepo{rule: &domain.SlotRule{
		TenantID:                     f.tenantID,
		Mode:                         domain.ModeServiceDuration,
		BufferBetweenServicesMinutes: 15,
		Active:                       true,
	}}

	// По правилу с буфером кандидаты идут с шагом 75 минут от 09:00
	f.req.StartTime = time.Date(2026, 3, 16, 10, 15, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, f.req.StartTime.Add(75*time.Minute), resp.EndTime)
}

func TestExecute_RejectsNonCandidateTime(t *testing.T) {
	f := newFixture(t)

	// 10:30 не является кандидатом при back-to-back генерации от 09:00
	f.req.StartTime = time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_RejectsConflictingSlot(t *testing.T) {
	f := newFixture(t)

	f.bookingRepo.bookings = []*domain.Booking{{
		ID:        uuid.New(),
		Status:    domain.StatusConfirmed,
		StartTime: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
	}}

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_TerminalBookingDoesNotBlockSlot(t *testing.T) {
	f := newFixture(t)

	f.bookingRepo.bookings = []*domain.Booking{{
		ID:        uuid.New(),
		Status:    domain.StatusCancelled,
		StartTime: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
	}}

	_, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)
	assert.NotNil(t, f.bookingRepo.created)
}

func TestExecute_RejectsPastStartTime(t *testing.T) {
	f := newFixture(t)

	f.req.StartTime = time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestExecute_RejectsSubMinutePrecision(t *testing.T) {
	f := newFixture(t)

	f.req.StartTime = time.Date(2026, 3, 16, 10, 0, 30, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsMissingFields(t *testing.T) {
	f := newFixture(t)
	f.req.ServiceIDs = nil

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InactiveProfessional(t *testing.T) {
	f := newFixture(t)

	catalog := f.uc.catalogRepo.(*fakeCatalogRepo)
	catalog.professional.Active = false

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotAssigned(t *testing.T) {
	f := newFixture(t)

	catalog := f.uc.catalogRepo.(*fakeCatalogRepo)
	catalog.assignments = map[uuid.UUID]*domain.ServiceAssignment{}

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrServiceNotAssigned)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	f.req.StartTime = time.Date(2026, 3, 16, 20, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), f.req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
