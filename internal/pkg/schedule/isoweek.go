package schedule

import "time"

// WeekNumber returns the ISO 8601 year and week number for a date. Week 1 is
// the week containing the year's first Thursday; weeks run Monday through
// Sunday, so dates near a year boundary may belong to the other year's week
// (including week 53 of a long year).
func WeekNumber(t time.Time) (isoYear, week int) {
	return t.ISOWeek()
}

// WeekParity returns ParityOdd or ParityEven depending on the date's ISO week
// number.
func WeekParity(t time.Time) Parity {
	_, week := t.ISOWeek()
	if week%2 == 1 {
		return ParityOdd
	}
	return ParityEven
}
