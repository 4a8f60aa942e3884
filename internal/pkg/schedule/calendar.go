package schedule

import "time"

// Holiday is a closed date interval [Start, End]; both ends inclusive.
// Intervals from different holidays may overlap.
type Holiday struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date of t falls inside the interval.
func (h Holiday) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(h.Start)) && !d.After(DateOf(h.End))
}

// IsHoliday reports whether the date falls inside any of the holidays.
func IsHoliday(t time.Time, holidays []Holiday) bool {
	for _, h := range holidays {
		if h.Contains(t) {
			return true
		}
	}
	return false
}

// MatchesWeekday reports whether the date falls on the given weekday.
func MatchesWeekday(t time.Time, weekday time.Weekday) bool {
	return t.Weekday() == weekday
}
