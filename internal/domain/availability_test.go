package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOfWeek(t *testing.T) {
	// 2026-03-09 это понедельник
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
	}{
		{"monday maps to itself", time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)},
		{"wednesday", time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)},
		{"saturday", time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)},
		{"sunday belongs to the preceding monday", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, monday, MondayOfWeek(tc.date))
		})
	}
}

func TestAvailabilityScope(t *testing.T) {
	global := GlobalScope()
	assert.True(t, global.IsGlobal())
	_, ok := global.WeekStart()
	assert.False(t, ok)
	assert.Equal(t, "global", global.String())

	week := WeekScope(time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC))
	assert.False(t, week.IsGlobal())
	weekStart, ok := week.WeekStart()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), weekStart)
	assert.Equal(t, "week 2026-03-09", week.String())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusConfirmed, StatusCompleted))
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))

	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusCancelled, StatusConfirmed))
	assert.False(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.False(t, CanTransition(StatusConfirmed, StatusPending))
}

func TestBlocksSlot(t *testing.T) {
	for _, status := range BlockingStatuses {
		appt := &Appointment{Status: status}
		assert.True(t, appt.BlocksSlot(), "status %s", status)
	}

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.BlocksSlot())
}
