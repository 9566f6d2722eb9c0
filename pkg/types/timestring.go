package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day as a zero-padded "HH:MM" string.
// Labels are stored as text so that lexicographic order matches
// chronological order, which callers rely on for display ordering.
type TimeString string

const timeLayout = "15:04"

var (
	// ErrInvalidFormat возвращается при некорректном формате времени
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrOutOfRange = errors.New("types: time is out of the 24h range")
)

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed zero-padded "HH:MM".
func (t TimeString) Validate() error {
	if len(t) != 5 {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is strictly earlier than other.
// Valid values are zero-padded, so string comparison is chronological.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// AddMinutes returns the time-of-day m minutes after t.
// Fails if the result leaves the current day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.totalMinutes()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %dmin", ErrOutOfRange, t, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// totalMinutes converts the value to minutes since midnight.
func (t TimeString) totalMinutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Value implements driver.Valuer so the type can be written directly.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// strings or byte slices depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(normalizeDBTime(v))
		return nil
	case []byte:
		*t = TimeString(normalizeDBTime(string(v)))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// normalizeDBTime trims the seconds part of "HH:MM:SS" values.
func normalizeDBTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
