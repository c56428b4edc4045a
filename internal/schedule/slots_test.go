package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/ptr"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

func TestGenerateCandidates_ServiceDuration(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.ModeServiceDuration}
	intervals := []Interval{{Start: "09:00", End: "12:00"}}

	candidates, err := GenerateCandidates(intervals, rule, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, candidates)
}

func TestGenerateCandidates_ServiceDurationWithBuffer(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.ModeServiceDuration, BufferBetweenServicesMinutes: 15}
	intervals := []Interval{{Start: "09:00", End: "12:00"}}

	// Шаг 75 минут: 09:00, 10:15, 11:30.
	// 11:30+60 = 12:30 > 12:00 - не помещается даже без буфера.
	candidates, err := GenerateCandidates(intervals, rule, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "10:15"}, candidates)
}

func TestGenerateCandidates_LastSlotSkipsTailBuffer(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.ModeServiceDuration, BufferBetweenServicesMinutes: 30}
	intervals := []Interval{{Start: "09:00", End: "11:45"}}

	// Шаг 90: 09:00 влезает с буфером; 10:30+60=11:30 <= 11:45, но буфер
	// вываливается за конец смены - последний слот допускается без буфера
	candidates, err := GenerateCandidates(intervals, rule, 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, candidates)
}

func TestGenerateCandidates_Interval(t *testing.T) {
	rule := &domain.SlotRule{
		Mode:            domain.ModeInterval,
		IntervalMinutes: ptr.Ptr(30),
	}
	intervals := []Interval{{Start: "10:00", End: "12:00"}}

	candidates, err := GenerateCandidates(intervals, rule, 45)
	require.NoError(t, err)

	// 10:00, 10:30, 11:00 (11:00+45=11:45 <= 12:00); 11:30+45 > 12:00
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00"}, candidates)
}

func TestGenerateCandidates_IntervalRequiresStep(t *testing.T) {
	intervals := []Interval{{Start: "09:00", End: "12:00"}}

	_, err := GenerateCandidates(intervals, &domain.SlotRule{Mode: domain.ModeInterval}, 30)
	assert.ErrorIs(t, err, ErrMisconfiguredRule)

	_, err = GenerateCandidates(intervals, &domain.SlotRule{
		Mode:            domain.ModeInterval,
		IntervalMinutes: ptr.Ptr(0),
	}, 30)
	assert.ErrorIs(t, err, ErrMisconfiguredRule)
}

func TestGenerateCandidates_Fixed(t *testing.T) {
	rule := &domain.SlotRule{
		Mode:       domain.ModeFixed,
		FixedTimes: []types.TimeString{"14:00", "09:00", "11:00", "09:00", "20:00"},
	}
	intervals := []Interval{
		{Start: "09:00", End: "12:00"},
		{Start: "13:00", End: "18:00"},
	}

	candidates, err := GenerateCandidates(intervals, rule, 60)
	require.NoError(t, err)

	// Отсортировано, без дубликатов; 20:00 вне рабочих интервалов
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "14:00"}, candidates)
}

func TestGenerateCandidates_FixedRespectsDuration(t *testing.T) {
	rule := &domain.SlotRule{
		Mode:       domain.ModeFixed,
		FixedTimes: []types.TimeString{"11:30"},
	}
	intervals := []Interval{{Start: "09:00", End: "12:00"}}

	// 11:30 + 60 минут не помещается до 12:00
	candidates, err := GenerateCandidates(intervals, rule, 60)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_EmptyIntervals(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.ModeServiceDuration}

	candidates, err := GenerateCandidates(nil, rule, 30)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_InvalidDuration(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.ModeServiceDuration}

	_, err := GenerateCandidates([]Interval{{Start: "09:00", End: "12:00"}}, rule, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateCandidates([]Interval{{Start: "09:00", End: "12:00"}}, rule, -10)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestGenerateCandidates_UnknownMode(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.SlotMode("RANDOM")}

	_, err := GenerateCandidates([]Interval{{Start: "09:00", End: "12:00"}}, rule, 30)
	assert.ErrorIs(t, err, ErrMisconfiguredRule)
}

func TestGenerateCandidates_NegativeBufferTreatedAsZero(t *testing.T) {
	rule := &domain.SlotRule{Mode: domain.ModeServiceDuration, BufferBetweenServicesMinutes: -5}
	intervals := []Interval{{Start: "09:00", End: "11:00"}}

	candidates, err := GenerateCandidates(intervals, rule, 60)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, candidates)
}
