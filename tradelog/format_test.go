package tradelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"micros", time.Date(2024, 3, 5, 9, 7, 1, 123456789, time.Local), "2024-03-05 09:07:01.123456"},
		{"leading zero micros", time.Date(2024, 3, 5, 9, 7, 1, 42000, time.Local), "2024-03-05 09:07:01.000042"},
		{"whole second", time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local), "2024-12-31 23:59:59"},
		{"sub micro dropped", time.Date(2024, 1, 1, 0, 0, 0, 999, time.Local), "2024-01-01 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 6, 1, 14, 30, 0, 250000000, time.Local)

	e, err := ParseLine(FormatLine(want) + "\n")
	require.NoError(t, err)
	assert.True(t, e.Time.Equal(want))

	e, err = ParseLine("Trade executed at 2025-06-01 14:30:00")
	require.NoError(t, err)
	assert.True(t, e.Time.Equal(time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local)))
}

func TestParseLineRejects(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"",
		"Running trading strategy at 2025-06-01 14:30:00",
		"Trade executed at yesterday",
		"trade executed at 2025-06-01 14:30:00",
	} {
		_, err := ParseLine(line)
		assert.ErrorIs(t, err, ErrMalformedLine, line)
	}
}
