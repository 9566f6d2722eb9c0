package domain

import (
	"time"

	"github.com/eh-co/CryoBookingService/pkg/types"
)

// AvailabilityFlag is a persisted opt-in marker for one
// (day of week, time slot) pair within some scope.
type AvailabilityFlag struct {
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	TimeSlot    types.TimeString
	IsAvailable bool
}

// AvailabilityScope identifies which flag set an operation targets:
// either the global default or one Monday-anchored week override.
type AvailabilityScope struct {
	weekStart *time.Time
}

// GlobalScope returns the scope of the legacy global default flags
func GlobalScope() AvailabilityScope {
	return AvailabilityScope{}
}

// WeekScope returns the scope of the week containing date.
// The week start is normalized to that week's Monday at midnight.
func WeekScope(date time.Time) AvailabilityScope {
	monday := MondayOfWeek(date)
	return AvailabilityScope{weekStart: &monday}
}

// IsGlobal reports whether the scope targets the global default
func (s AvailabilityScope) IsGlobal() bool {
	return s.weekStart == nil
}

// WeekStart returns the Monday anchoring a week scope.
// The second return value is false for the global scope.
func (s AvailabilityScope) WeekStart() (time.Time, bool) {
	if s.weekStart == nil {
		return time.Time{}, false
	}
	return *s.weekStart, true
}

// String returns a log-friendly representation of the scope
func (s AvailabilityScope) String() string {
	if s.weekStart == nil {
		return "global"
	}
	return "week " + s.weekStart.Format(DateFormat)
}

// MondayOfWeek returns the Monday of the ISO week containing date,
// truncated to midnight in the date's location.
func MondayOfWeek(date time.Time) time.Time {
	// time.Weekday: Sunday=0, поэтому сдвигаем так, чтобы Monday=0
	offset := (int(date.Weekday()) + 6) % 7
	monday := date.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, date.Location())
}

// TimeSlot is one resolver output entry: a template label and whether
// it can currently be booked.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
