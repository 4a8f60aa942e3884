package schedule

import "time"

// Parity classifies ISO 8601 week numbers as odd or even.
type Parity string

// Week parity values
const (
	ParityAll  Parity = "ALL"
	ParityOdd  Parity = "ODD"
	ParityEven Parity = "EVEN"
)

// Recurrence describes the cadence of a course as a closed set of variants:
// Weekly, Biweekly and MonthlyByWeekdayOrdinal. Each variant knows how to
// expand itself into concrete candidate dates over an inclusive range.
type Recurrence interface {
	// Expand returns the ordered candidate dates for the given course weekday
	// within [from, to], both inclusive. An inverted range yields nil.
	Expand(weekday time.Weekday, from, to time.Time) []time.Time
}

// Weekly emits the first matching weekday on or after the range start and
// every 7th day after it.
type Weekly struct{}

// Biweekly emits dates on an alternating-week cadence. With ParityAll the
// cadence is a plain 14-day step from the first matching weekday. With
// ParityOdd or ParityEven every week is considered and a date is emitted only
// when its ISO week number has the requested parity, which can place two
// emissions 7 days apart across a 53-week year boundary.
type Biweekly struct {
	Parity Parity
}

// MonthlyByWeekdayOrdinal emits the range start itself, then for each
// following month the k-th occurrence of the start date's weekday, where k is
// the ordinal of the start date within its own month. Months with fewer than
// k such weekdays clamp to their last occurrence.
type MonthlyByWeekdayOrdinal struct{}

// Expand implements Recurrence.
func (Weekly) Expand(weekday time.Weekday, from, to time.Time) []time.Time {
	var dates []time.Time
	for d := firstOnOrAfter(from, weekday); !d.After(to); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// Expand implements Recurrence.
func (r Biweekly) Expand(weekday time.Weekday, from, to time.Time) []time.Time {
	var dates []time.Time
	switch r.Parity {
	case ParityOdd, ParityEven:
		// Walk every week; parity of the ISO week decides emission. No
		// 14-day shortcut here, consecutive ISO weeks can share a parity
		// when a 53-week year rolls over.
		for d := firstOnOrAfter(from, weekday); !d.After(to); d = d.AddDate(0, 0, 7) {
			if WeekParity(d) == r.Parity {
				dates = append(dates, d)
			}
		}
	default:
		for d := firstOnOrAfter(from, weekday); !d.After(to); d = d.AddDate(0, 0, 14) {
			dates = append(dates, d)
		}
	}
	return dates
}

// Expand implements Recurrence. The weekday argument is ignored: the cadence
// is anchored on the range start's own weekday and ordinal.
func (MonthlyByWeekdayOrdinal) Expand(_ time.Weekday, from, to time.Time) []time.Time {
	if from.After(to) {
		return nil
	}

	start := DateOf(from)
	ordinal := (start.Day()-1)/7 + 1

	dates := []time.Time{start}
	year, month := start.Year(), start.Month()
	for {
		month++
		if month > time.December {
			month = time.January
			year++
		}
		d := NthWeekdayOfMonth(year, month, start.Weekday(), ordinal)
		if d.After(to) {
			return dates
		}
		dates = append(dates, d)
	}
}

// NthWeekdayOfMonth returns the n-th occurrence of the given weekday within
// the month, clamped to the month's last occurrence when the month has fewer
// than n of them. n must be at least 1.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	d := first.AddDate(0, 0, offset+(n-1)*7)
	for d.Month() != month {
		d = d.AddDate(0, 0, -7)
	}
	return d
}

// firstOnOrAfter returns the earliest date on or after from that falls on the
// given weekday.
func firstOnOrAfter(from time.Time, weekday time.Weekday) time.Time {
	d := DateOf(from)
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// DateOf strips the time-of-day component, yielding midnight UTC of the same
// calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
