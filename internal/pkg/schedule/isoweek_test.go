package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantYear int
		wantWeek int
	}{
		{
			name:     "Midyear date",
			date:     time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			wantYear: 2024,
			wantWeek: 24,
		},
		{
			name:     "Week 53 of a long year (2020)",
			date:     time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
			wantYear: 2020,
			wantWeek: 53,
		},
		{
			name:     "January date belonging to previous ISO year",
			date:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			wantYear: 2020,
			wantWeek: 53,
		},
		{
			name:     "First week of the year after a long year",
			date:     time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
			wantYear: 2021,
			wantWeek: 1,
		},
		{
			name:     "December date belonging to next ISO year",
			date:     time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 1,
		},
		{
			name:     "Week 53 of a long year (2026)",
			date:     time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC),
			wantYear: 2026,
			wantWeek: 53,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotYear, gotWeek := WeekNumber(tt.date)
			assert.Equal(t, tt.wantYear, gotYear)
			assert.Equal(t, tt.wantWeek, gotWeek)
		})
	}
}

func TestWeekParity(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Parity
	}{
		{
			name: "Week 52 is even",
			date: time.Date(2026, 12, 23, 0, 0, 0, 0, time.UTC),
			want: ParityEven,
		},
		{
			name: "Week 53 is odd",
			date: time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC),
			want: ParityOdd,
		},
		{
			name: "Week 1 after week 53 is odd again",
			date: time.Date(2027, 1, 6, 0, 0, 0, 0, time.UTC),
			want: ParityOdd,
		},
		{
			name: "Week 2 is even",
			date: time.Date(2027, 1, 13, 0, 0, 0, 0, time.UTC),
			want: ParityEven,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekParity(tt.date))
		})
	}
}

// Week 53 of 2026 and week 1 of 2027 are both odd while only 7 days apart.
// The parity sequence must come straight out of the ISO computation, with no
// smoothing at the year boundary.
func TestWeekParity_LongYearBoundary(t *testing.T) {
	last := time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC) // Monday, week 53
	next := last.AddDate(0, 0, 7)                         // Monday, week 1 of 2027

	assert.Equal(t, ParityOdd, WeekParity(last))
	assert.Equal(t, ParityOdd, WeekParity(next))
}
