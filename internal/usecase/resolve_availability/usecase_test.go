package resolve_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

type appointmentRepoMock struct {
	getBlockedSlots func(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

func (m *appointmentRepoMock) GetBlockedSlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	return m.getBlockedSlots(ctx, date)
}

type availabilityRepoMock struct {
	getWeekFlags   func(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error)
	getGlobalFlags func(ctx context.Context) ([]domain.AvailabilityFlag, error)
}

func (m *availabilityRepoMock) GetWeekFlags(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
	return m.getWeekFlags(ctx, weekStart)
}

func (m *availabilityRepoMock) GetGlobalFlags(ctx context.Context) ([]domain.AvailabilityFlag, error) {
	return m.getGlobalFlags(ctx)
}

type loggerMock struct{}

func (l *loggerMock) Info(format string, v ...interface{})  {}
func (l *loggerMock) Warn(format string, v ...interface{})  {}
func (l *loggerMock) Error(format string, v ...interface{}) {}

// 2026-03-11 это среда, day_of_week = 3
var testDate = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

func noFlags(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
	return []domain.AvailabilityFlag{}, nil
}

func noBlocked(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	return []types.TimeString{}, nil
}

func slotByTime(resp *Response, slot types.TimeString) (domain.TimeSlot, bool) {
	for _, s := range resp.Slots {
		if s.Time == slot {
			return s, true
		}
	}
	return domain.TimeSlot{}, false
}

func TestExecute_NoFlagsMeansClosedDay(t *testing.T) {
	uc := NewUseCase(
		&appointmentRepoMock{getBlockedSlots: noBlocked},
		&availabilityRepoMock{
			getWeekFlags:   noFlags,
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) { return nil, nil },
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, len(domain.DefaultScheduleTemplate()))
	for _, s := range resp.Slots {
		assert.False(t, s.Available, "slot %s should be closed", s.Time)
	}
}

func TestExecute_WeekFlagsShadowGlobal(t *testing.T) {
	globalCalled := false

	uc := NewUseCase(
		&appointmentRepoMock{getBlockedSlots: noBlocked},
		&availabilityRepoMock{
			getWeekFlags: func(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
				assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), weekStart)
				return []domain.AvailabilityFlag{
					{DayOfWeek: 3, TimeSlot: "10:00", IsAvailable: true},
				}, nil
			},
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) {
				globalCalled = true
				return []domain.AvailabilityFlag{
					{DayOfWeek: 3, TimeSlot: "11:00", IsAvailable: true},
				}, nil
			},
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// Недельный набор полностью вытесняет глобальный, даже из одного флага
	assert.False(t, globalCalled)

	tenOClock, ok := slotByTime(resp, "10:00")
	require.True(t, ok)
	assert.True(t, tenOClock.Available)

	elevenOClock, ok := slotByTime(resp, "11:00")
	require.True(t, ok)
	assert.False(t, elevenOClock.Available)
}

func TestExecute_GlobalFallback(t *testing.T) {
	uc := NewUseCase(
		&appointmentRepoMock{getBlockedSlots: noBlocked},
		&availabilityRepoMock{
			getWeekFlags: noFlags,
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) {
				return []domain.AvailabilityFlag{
					{DayOfWeek: 3, TimeSlot: "09:00", IsAvailable: true},
					{DayOfWeek: 4, TimeSlot: "10:00", IsAvailable: true}, // другой день
				}, nil
			},
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	nineOClock, ok := slotByTime(resp, "09:00")
	require.True(t, ok)
	assert.True(t, nineOClock.Available)

	// Флаг четверга не открывает слот среды
	tenOClock, ok := slotByTime(resp, "10:00")
	require.True(t, ok)
	assert.False(t, tenOClock.Available)
}

func TestExecute_GlobalFlagsWithBookedSlot(t *testing.T) {
	// Понедельник, day_of_week = 1, недельного переопределения нет
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&appointmentRepoMock{
			getBlockedSlots: func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
				return []types.TimeString{"09:00"}, nil
			},
		},
		&availabilityRepoMock{
			getWeekFlags: noFlags,
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) {
				return []domain.AvailabilityFlag{
					{DayOfWeek: 1, TimeSlot: "09:00", IsAvailable: true},
					{DayOfWeek: 1, TimeSlot: "09:30", IsAvailable: true},
				}, nil
			},
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	// Подтвержденная запись закрывает 09:00, 09:30 остается открытым,
	// все остальные слоты не настроены и закрыты
	for _, s := range resp.Slots {
		switch s.Time {
		case "09:30":
			assert.True(t, s.Available)
		default:
			assert.False(t, s.Available, "slot %s should be closed", s.Time)
		}
	}
}

func TestExecute_BookedSlotIsBlocked(t *testing.T) {
	uc := NewUseCase(
		&appointmentRepoMock{
			getBlockedSlots: func(ctx context.Context, date time.Time) ([]types.TimeString, error) {
				return []types.TimeString{"10:00"}, nil
			},
		},
		&availabilityRepoMock{
			getWeekFlags: func(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
				return []domain.AvailabilityFlag{
					{DayOfWeek: 3, TimeSlot: "10:00", IsAvailable: true},
					{DayOfWeek: 3, TimeSlot: "10:30", IsAvailable: true},
				}, nil
			},
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) { return nil, nil },
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	booked, ok := slotByTime(resp, "10:00")
	require.True(t, ok)
	assert.False(t, booked.Available)

	free, ok := slotByTime(resp, "10:30")
	require.True(t, ok)
	assert.True(t, free.Available)
}

func TestExecute_FlaggedUnavailableStaysClosed(t *testing.T) {
	uc := NewUseCase(
		&appointmentRepoMock{getBlockedSlots: noBlocked},
		&availabilityRepoMock{
			getWeekFlags: func(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
				return []domain.AvailabilityFlag{
					{DayOfWeek: 3, TimeSlot: "10:00", IsAvailable: false},
				}, nil
			},
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) { return nil, nil },
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	tenOClock, ok := slotByTime(resp, "10:00")
	require.True(t, ok)
	assert.False(t, tenOClock.Available)
}

func TestExecute_StoreErrorDoesNotOpenSchedule(t *testing.T) {
	uc := NewUseCase(
		&appointmentRepoMock{getBlockedSlots: noBlocked},
		&availabilityRepoMock{
			getWeekFlags: func(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error) {
				return nil, errors.New("connection refused")
			},
			getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) { return nil, nil },
		},
		&loggerMock{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := NewUseCase(
		&appointmentRepoMock{getBlockedSlots: noBlocked},
		&availabilityRepoMock{getWeekFlags: noFlags, getGlobalFlags: func(ctx context.Context) ([]domain.AvailabilityFlag, error) { return nil, nil }},
		&loggerMock{},
	)

	_, err := uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
