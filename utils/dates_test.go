package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2025-08-20", "2025-08-20", true},
		{"2025/08/20", "2025-08-20", true},
		{"8/20/2025", "2025-08-20", true},
		{"20 Aug 2025", "2025-08-20", true},
		{"2025-08-20 14:30:00", "2025-08-20", true},
		{"45889", "2025-08-20", true}, // spreadsheet serial date
		{"", "", false},
		{"not a date", "", false},
		{"2025", "", false}, // a bare year is not a serial
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.input)
		require.Equal(t, tt.ok, ok, "input %q", tt.input)
		if ok {
			assert.Equal(t, tt.want, FormatDate(got), "input %q", tt.input)
		} else {
			assert.True(t, got.IsZero(), "input %q should coerce to the zero time", tt.input)
		}
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-08", MonthKey(time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, time.August, 20, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.August, 22, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(start, end))
}
