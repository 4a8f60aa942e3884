package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekly_Expand(t *testing.T) {
	tests := []struct {
		name    string
		weekday time.Weekday
		from    time.Time
		to      time.Time
		want    []time.Time
	}{
		{
			name:    "Monday course over four weeks",
			weekday: time.Monday,
			from:    date(2024, 3, 4),
			to:      date(2024, 3, 25),
			want: []time.Time{
				date(2024, 3, 4), date(2024, 3, 11), date(2024, 3, 18), date(2024, 3, 25),
			},
		},
		{
			name:    "Range start not on course weekday",
			weekday: time.Wednesday,
			from:    date(2024, 3, 4),
			to:      date(2024, 3, 20),
			want: []time.Time{
				date(2024, 3, 6), date(2024, 3, 13), date(2024, 3, 20),
			},
		},
		{
			name:    "Inverted range yields nothing",
			weekday: time.Monday,
			from:    date(2024, 3, 25),
			to:      date(2024, 3, 4),
			want:    nil,
		},
		{
			name:    "Range too short to reach the weekday",
			weekday: time.Sunday,
			from:    date(2024, 3, 4), // Monday
			to:      date(2024, 3, 8), // Friday
			want:    nil,
		},
		{
			name:    "Single-day range on the weekday",
			weekday: time.Monday,
			from:    date(2024, 3, 4),
			to:      date(2024, 3, 4),
			want:    []time.Time{date(2024, 3, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weekly{}.Expand(tt.weekday, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBiweekly_Expand_AllWeeks(t *testing.T) {
	got := Biweekly{Parity: ParityAll}.Expand(time.Tuesday, date(2024, 3, 1), date(2024, 4, 30))

	want := []time.Time{
		date(2024, 3, 5), date(2024, 3, 19), date(2024, 4, 2), date(2024, 4, 16), date(2024, 4, 30),
	}
	assert.Equal(t, want, got)

	for i := 1; i < len(got); i++ {
		assert.Equal(t, 14*24*time.Hour, got[i].Sub(got[i-1]), "consecutive dates must be 14 days apart")
	}
}

func TestBiweekly_Expand_Parity(t *testing.T) {
	tests := []struct {
		name    string
		parity  Parity
		weekday time.Weekday
		from    time.Time
		to      time.Time
		want    []time.Time
	}{
		{
			name:    "Odd weeks across the 2026/2027 long-year boundary",
			parity:  ParityOdd,
			weekday: time.Wednesday,
			from:    date(2026, 12, 21),
			to:      date(2027, 1, 31),
			// Week 52 is even and skipped; weeks 53 and 1 are both odd, so
			// the first two emissions are only 7 days apart.
			want: []time.Time{
				date(2026, 12, 30), date(2027, 1, 6), date(2027, 1, 20),
			},
		},
		{
			name:    "Even weeks in a plain stretch of year",
			parity:  ParityEven,
			weekday: time.Friday,
			from:    date(2024, 6, 1),
			to:      date(2024, 7, 15),
			// 2024-06-07 is week 23, so even weeks start at 06-14 (week 24).
			want: []time.Time{
				date(2024, 6, 14), date(2024, 6, 28), date(2024, 7, 12),
			},
		},
		{
			name:    "No matching parity within range",
			parity:  ParityOdd,
			weekday: time.Friday,
			from:    date(2024, 6, 10), // week 24 (even)
			to:      date(2024, 6, 16),
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Biweekly{Parity: tt.parity}.Expand(tt.weekday, tt.from, tt.to)
			require.Equal(t, tt.want, got)

			for _, d := range got {
				assert.Equal(t, tt.parity, WeekParity(d))
			}
		})
	}
}

func TestMonthlyByWeekdayOrdinal_Expand(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want []time.Time
	}{
		{
			name: "Second Tuesday each month",
			from: date(2024, 1, 9), // 2nd Tuesday of January
			to:   date(2024, 4, 30),
			want: []time.Time{
				date(2024, 1, 9), date(2024, 2, 13), date(2024, 3, 12), date(2024, 4, 9),
			},
		},
		{
			name: "Fifth Wednesday clamps to the month's last",
			from: date(2024, 1, 31), // 5th Wednesday of January
			to:   date(2024, 4, 30),
			want: []time.Time{
				date(2024, 1, 31), // anchor
				date(2024, 2, 28), // February has 4 Wednesdays
				date(2024, 3, 27), // March has 4 Wednesdays
				date(2024, 4, 24), // April has 4 Wednesdays
			},
		},
		{
			name: "Anchor is emitted even when the range barely contains it",
			from: date(2024, 5, 20),
			to:   date(2024, 5, 20),
			want: []time.Time{date(2024, 5, 20)},
		},
		{
			name: "Inverted range yields nothing",
			from: date(2024, 5, 20),
			to:   date(2024, 5, 19),
			want: nil,
		},
		{
			name: "Year boundary",
			from: date(2024, 11, 25), // 4th Monday of November
			to:   date(2025, 1, 31),
			want: []time.Time{
				date(2024, 11, 25), date(2024, 12, 23), date(2025, 1, 27),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyByWeekdayOrdinal{}.Expand(time.Monday, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    time.Time
	}{
		{"1st Monday of January 2024", 2024, time.January, time.Monday, 1, date(2024, 1, 1)},
		{"5th Monday of January 2024", 2024, time.January, time.Monday, 5, date(2024, 1, 29)},
		{"3rd Thursday of February 2024", 2024, time.February, time.Thursday, 3, date(2024, 2, 15)},
		{"5th Friday of February 2024 clamps to 4th", 2024, time.February, time.Friday, 5, date(2024, 2, 23)},
		{"5th Thursday of February 2024 is real (leap year)", 2024, time.February, time.Thursday, 5, date(2024, 2, 29)},
		{"1st Sunday of September 2024", 2024, time.September, time.Sunday, 1, date(2024, 9, 1)},
		{"5th Sunday of February 2023 clamps to 4th", 2023, time.February, time.Sunday, 5, date(2023, 2, 26)},
		{"2nd Saturday of December 2026", 2026, time.December, time.Saturday, 2, date(2026, 12, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.weekday, got.Weekday())
			assert.Equal(t, tt.month, got.Month())
		})
	}
}
