package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusRequested.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())

	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestBookingStatus_Blocks(t *testing.T) {
	assert.True(t, StatusRequested.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.True(t, StatusInProgress.Blocks())

	assert.False(t, StatusCompleted.Blocks())
	assert.False(t, StatusCancelled.Blocks())
	assert.False(t, StatusRejected.Blocks())
	assert.False(t, StatusNoShow.Blocks())
}

func TestBooking_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusRequested, StatusConfirmed, true},
		{StatusRequested, StatusRejected, true},
		{StatusRequested, StatusInProgress, false},
		{StatusRequested, StatusCancelled, false},

		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusConfirmed, StatusRejected, false},

		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, false},

		// Из терминальных статусов переходов нет
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusRejected, StatusRequested, false},
		{StatusNoShow, StatusConfirmed, false},
	}

	for _, c := range cases {
		b := &Booking{Status: c.from}
		assert.Equal(t, c.allowed, b.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestBooking_CanBeRescheduled(t *testing.T) {
	for _, s := range []BookingStatus{
		StatusRequested, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusRejected, StatusNoShow,
	} {
		b := &Booking{Status: s}
		assert.False(t, b.CanBeRescheduled(), "status %s", s)
	}

	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.CanBeRescheduled())
}

func TestBooking_TotalDurationMinutes(t *testing.T) {
	b := &Booking{
		Services: []BookingServiceInfo{
			{DurationMinutes: 30},
			{DurationMinutes: 45},
			{DurationMinutes: 15},
		},
	}
	assert.Equal(t, 90, b.TotalDurationMinutes())

	empty := &Booking{}
	assert.Equal(t, 0, empty.TotalDurationMinutes())
}

func TestTransitionAction_TargetStatus(t *testing.T) {
	cases := map[TransitionAction]BookingStatus{
		ActionConfirm:  StatusConfirmed,
		ActionStart:    StatusInProgress,
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
		ActionReject:   StatusRejected,
		ActionNoShow:   StatusNoShow,
	}

	for action, want := range cases {
		got, ok := action.TargetStatus()
		assert.True(t, ok, "action %s", action)
		assert.Equal(t, want, got)
	}

	_, ok := TransitionAction("approve").TargetStatus()
	assert.False(t, ok)
}

func TestTransitionAction_AcceptsReason(t *testing.T) {
	assert.True(t, ActionCancel.AcceptsReason())
	assert.True(t, ActionReject.AcceptsReason())

	assert.False(t, ActionConfirm.AcceptsReason())
	assert.False(t, ActionStart.AcceptsReason())
	assert.False(t, ActionComplete.AcceptsReason())
	assert.False(t, ActionNoShow.AcceptsReason())
}
