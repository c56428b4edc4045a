package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/ptr"
)

func TestComposeServices_OrderAndOverrides(t *testing.T) {
	cutID := uuid.New()
	colorID := uuid.New()

	services := map[uuid.UUID]*domain.Service{
		cutID:   {ID: cutID, Name: "Corte", Price: 50, DurationMinutes: 30, Active: true},
		colorID: {ID: colorID, Name: "Coloração", Price: 120, DurationMinutes: 90, Active: true},
	}
	assignments := map[uuid.UUID]*domain.ServiceAssignment{
		cutID: {ServiceID: cutID, Active: true},
		colorID: {
			ServiceID:             colorID,
			Active:                true,
			CustomPrice:           ptr.Ptr(100.0),
			CustomDurationMinutes: ptr.Ptr(75),
		},
	}

	infos, err := ComposeServices([]uuid.UUID{colorID, cutID}, services, assignments)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// Порядок запроса сохраняется, переопределения применяются
	assert.Equal(t, domain.BookingServiceInfo{
		ServiceID:       colorID,
		ServiceName:     "Coloração",
		Price:           100,
		DurationMinutes: 75,
		DisplayOrder:    0,
	}, infos[0])
	assert.Equal(t, domain.BookingServiceInfo{
		ServiceID:       cutID,
		ServiceName:     "Corte",
		Price:           50,
		DurationMinutes: 30,
		DisplayOrder:    1,
	}, infos[1])

	assert.Equal(t, 105, TotalDurationMinutes(infos))
	assert.Equal(t, 150.0, TotalPrice(infos))
}

func TestComposeServices_UnknownService(t *testing.T) {
	id := uuid.New()

	_, err := ComposeServices([]uuid.UUID{id},
		map[uuid.UUID]*domain.Service{},
		map[uuid.UUID]*domain.ServiceAssignment{})
	assert.ErrorIs(t, err, ErrServiceUnknown)
}

func TestComposeServices_NotAssigned(t *testing.T) {
	id := uuid.New()
	services := map[uuid.UUID]*domain.Service{
		id: {ID: id, Name: "Corte", Price: 50, DurationMinutes: 30, Active: true},
	}

	_, err := ComposeServices([]uuid.UUID{id}, services,
		map[uuid.UUID]*domain.ServiceAssignment{})
	assert.ErrorIs(t, err, ErrServiceNotAssigned)
}

func TestComposeServices_InactiveAssignment(t *testing.T) {
	id := uuid.New()
	services := map[uuid.UUID]*domain.Service{
		id: {ID: id, Name: "Corte", Price: 50, DurationMinutes: 30, Active: true},
	}
	assignments := map[uuid.UUID]*domain.ServiceAssignment{
		id: {ServiceID: id, Active: false},
	}

	_, err := ComposeServices([]uuid.UUID{id}, services, assignments)
	assert.ErrorIs(t, err, ErrServiceNotAssigned)
}
