package set_availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eh-co/CryoBookingService/internal/domain"
	availabilityRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/availability"
)

type availabilityRepoMock struct {
	replaceWeekFlags   func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error
	replaceGlobalFlags func(ctx context.Context, flags []domain.AvailabilityFlag) error
}

func (m *availabilityRepoMock) ReplaceWeekFlags(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
	return m.replaceWeekFlags(ctx, weekStart, flags)
}

func (m *availabilityRepoMock) ReplaceGlobalFlags(ctx context.Context, flags []domain.AvailabilityFlag) error {
	return m.replaceGlobalFlags(ctx, flags)
}

type txManagerMock struct{}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type loggerMock struct{}

func (l *loggerMock) Info(format string, v ...interface{})  {}
func (l *loggerMock) Warn(format string, v ...interface{})  {}
func (l *loggerMock) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *availabilityRepoMock) *UseCase {
	return NewUseCase(repo, &txManagerMock{}, &loggerMock{})
}

func TestExecute_ReplacesWeekFlags(t *testing.T) {
	var gotWeekStart time.Time
	var gotFlags []domain.AvailabilityFlag

	uc := newTestUseCase(&availabilityRepoMock{
		replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
			gotWeekStart = weekStart
			gotFlags = flags
			return nil
		},
		replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error {
			t.Fatal("global flags must not be touched for a week scope")
			return nil
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Scope: domain.WeekScope(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
		Entries: []Entry{
			{DayOfWeek: 1, TimeSlot: "09:00", IsAvailable: true},
			{DayOfWeek: 1, TimeSlot: "09:30", IsAvailable: false},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), gotWeekStart)
	require.Len(t, gotFlags, 2)
	assert.Equal(t, 2, resp.WrittenFlags)
}

func TestExecute_ReplacesGlobalFlags(t *testing.T) {
	var gotFlags []domain.AvailabilityFlag

	uc := newTestUseCase(&availabilityRepoMock{
		replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
			t.Fatal("week flags must not be touched for the global scope")
			return nil
		},
		replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error {
			gotFlags = flags
			return nil
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Scope:   domain.GlobalScope(),
		Entries: []Entry{{DayOfWeek: 2, TimeSlot: "10:00", IsAvailable: true}},
	})
	require.NoError(t, err)
	require.Len(t, gotFlags, 1)
	assert.Equal(t, 1, resp.WrittenFlags)
}

func TestExecute_EmptyEntriesClearScope(t *testing.T) {
	var gotFlags []domain.AvailabilityFlag

	uc := newTestUseCase(&availabilityRepoMock{
		replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
			gotFlags = flags
			return nil
		},
		replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error { return nil },
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Scope:   domain.WeekScope(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
		Entries: []Entry{},
	})
	require.NoError(t, err)
	assert.Empty(t, gotFlags)
	assert.Equal(t, 0, resp.WrittenFlags)
}

func TestExecute_DedupeKeepsLastEntry(t *testing.T) {
	var gotFlags []domain.AvailabilityFlag

	uc := newTestUseCase(&availabilityRepoMock{
		replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error { return nil },
		replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error {
			gotFlags = flags
			return nil
		},
	})

	_, err := uc.Execute(context.Background(), &Request{
		Scope: domain.GlobalScope(),
		Entries: []Entry{
			{DayOfWeek: 1, TimeSlot: "09:00", IsAvailable: true},
			{DayOfWeek: 1, TimeSlot: "09:00", IsAvailable: false},
		},
	})
	require.NoError(t, err)
	require.Len(t, gotFlags, 1)
	assert.False(t, gotFlags[0].IsAvailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&availabilityRepoMock{
		replaceWeekFlags:   func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error { return nil },
		replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error { return nil },
	})

	_, err := uc.Execute(context.Background(), &Request{
		Scope:   domain.GlobalScope(),
		Entries: []Entry{{DayOfWeek: 7, TimeSlot: "09:00", IsAvailable: true}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Scope:   domain.GlobalScope(),
		Entries: []Entry{{DayOfWeek: 1, TimeSlot: "9am", IsAvailable: true}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"clear failure", fmt.Errorf("%w: delete week", availabilityRepo.ErrDeleteScope), ErrClearFailed},
		{"insert failure", fmt.Errorf("%w: insert week", availabilityRepo.ErrInsertScope), ErrWriteFailed},
		{"other failure", fmt.Errorf("tx aborted"), ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(&availabilityRepoMock{
				replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
					return tc.repoErr
				},
				replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error { return tc.repoErr },
			})

			_, err := uc.Execute(context.Background(), &Request{
				Scope:   domain.GlobalScope(),
				Entries: []Entry{{DayOfWeek: 1, TimeSlot: "09:00", IsAvailable: true}},
			})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	t.Run("standard hours covers weekdays with lunch break", func(t *testing.T) {
		var gotFlags []domain.AvailabilityFlag
		uc := newTestUseCase(&availabilityRepoMock{
			replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
				gotFlags = flags
				return nil
			},
			replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error { return nil },
		})

		resp, err := uc.ApplyPreset(context.Background(),
			domain.WeekScope(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)), PresetStandardHours)
		require.NoError(t, err)

		// 14 слотов на 5 будних дней
		assert.Equal(t, 70, resp.WrittenFlags)

		days := make(map[int]bool)
		for _, f := range gotFlags {
			days[f.DayOfWeek] = true
			assert.True(t, f.IsAvailable)
			assert.NotEqual(t, "12:30", f.TimeSlot.String())
			assert.NotEqual(t, "13:00", f.TimeSlot.String())
		}
		assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}, days)
	})

	t.Run("all available covers monday to saturday", func(t *testing.T) {
		var gotFlags []domain.AvailabilityFlag
		uc := newTestUseCase(&availabilityRepoMock{
			replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error { return nil },
			replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error {
				gotFlags = flags
				return nil
			},
		})

		resp, err := uc.ApplyPreset(context.Background(), domain.GlobalScope(), PresetAllAvailable)
		require.NoError(t, err)

		assert.Equal(t, len(domain.DefaultScheduleTemplate())*6, resp.WrittenFlags)
		for _, f := range gotFlags {
			assert.NotEqual(t, 0, f.DayOfWeek, "sunday stays closed")
		}
	})

	t.Run("clear all writes empty set", func(t *testing.T) {
		cleared := false
		uc := newTestUseCase(&availabilityRepoMock{
			replaceWeekFlags: func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error {
				cleared = true
				assert.Empty(t, flags)
				return nil
			},
			replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error { return nil },
		})

		resp, err := uc.ApplyPreset(context.Background(),
			domain.WeekScope(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)), PresetClearAll)
		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Equal(t, 0, resp.WrittenFlags)
	})

	t.Run("unknown preset", func(t *testing.T) {
		uc := newTestUseCase(&availabilityRepoMock{
			replaceWeekFlags:   func(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error { return nil },
			replaceGlobalFlags: func(ctx context.Context, flags []domain.AvailabilityFlag) error { return nil },
		})

		_, err := uc.ApplyPreset(context.Background(), domain.GlobalScope(), "holiday_mode")
		assert.ErrorIs(t, err, ErrUnknownPreset)
	})
}
