package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsHoliday(t *testing.T) {
	holidays := []Holiday{
		{Name: "Winter Break", Start: date(2024, 12, 23), End: date(2025, 1, 3)},
		{Name: "Spring Recital Day", Start: date(2024, 3, 11), End: date(2024, 3, 11)},
		// Overlaps the tail of Winter Break on purpose.
		{Name: "New Year", Start: date(2025, 1, 1), End: date(2025, 1, 1)},
	}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"Inside interval", date(2024, 12, 27), true},
		{"First day inclusive", date(2024, 12, 23), true},
		{"Last day inclusive", date(2025, 1, 3), true},
		{"Day before interval", date(2024, 12, 22), false},
		{"Day after interval", date(2025, 1, 4), false},
		{"Single-day holiday", date(2024, 3, 11), true},
		{"Date covered by overlapping intervals", date(2025, 1, 1), true},
		{"Ordinary day", date(2024, 6, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHoliday(tt.d, holidays))
		})
	}
}

func TestIsHoliday_NoHolidays(t *testing.T) {
	assert.False(t, IsHoliday(date(2024, 1, 1), nil))
}

func TestHolidayContains_IgnoresTimeOfDay(t *testing.T) {
	h := Holiday{Name: "Closed", Start: date(2024, 5, 1), End: date(2024, 5, 1)}
	assert.True(t, h.Contains(time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)))
}

func TestMatchesWeekday(t *testing.T) {
	assert.True(t, MatchesWeekday(date(2024, 3, 4), time.Monday))
	assert.False(t, MatchesWeekday(date(2024, 3, 4), time.Tuesday))
}
