package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30", "09:30:00", "24:00", "09:60", "morgen", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", invalid)
	}
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	result, err := TimeString("09:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), result)

	result, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), result)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
