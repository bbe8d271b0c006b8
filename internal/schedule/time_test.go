package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"midnight", "00:00", 0},
		{"morning", "08:00", 480},
		{"with minutes", "10:45", 645},
		{"end of day", "23:59", 1439},
		{"no leading zero", "9:05", 545},
		{"garbage", "abc", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TimeToMinutes(tt.input))
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "08:00", MinutesToTime(480))
	assert.Equal(t, "10:45", MinutesToTime(645))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestTimeRoundTrip(t *testing.T) {
	for _, hhmm := range []string{"00:00", "08:30", "12:15", "23:59"} {
		assert.Equal(t, hhmm, MinutesToTime(TimeToMinutes(hhmm)))
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		expected                       bool
	}{
		{"disjoint", 60, 120, 180, 240, false},
		{"touching is not overlap", 60, 120, 120, 180, false},
		{"touching reversed", 120, 180, 60, 120, false},
		{"partial overlap", 60, 130, 120, 180, true},
		{"nested", 60, 240, 120, 180, true},
		{"identical", 60, 120, 60, 120, true},
		{"one minute overlap", 60, 121, 120, 180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 10))
	assert.Equal(t, 10, Clamp(15, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))
}
