package schedule

import "time"

// Enrollment is the engine's view of a course enrollment: who, since when,
// and whether it still counts.
type Enrollment struct {
	StudentID  int64
	EnrolledAt time.Time
	Active     bool
}

// Candidate is one lesson occurrence the engine wants to materialize:
// a date plus an optional participant. A nil StudentID marks the unassigned
// placeholder emitted when a course has no active enrollment on that date.
type Candidate struct {
	Date      time.Time
	StudentID *int64
}

// FanOut expands one candidate date into per-participant candidates. Every
// active enrollment whose enrollment day is on or before the date contributes
// one candidate; when none qualifies, exactly one placeholder candidate with
// no participant is emitted instead.
func FanOut(date time.Time, enrollments []Enrollment) []Candidate {
	var out []Candidate
	for _, e := range enrollments {
		if !e.Active {
			continue
		}
		if DateOf(e.EnrolledAt).After(DateOf(date)) {
			continue
		}
		id := e.StudentID
		out = append(out, Candidate{Date: date, StudentID: &id})
	}
	if len(out) == 0 {
		out = append(out, Candidate{Date: date})
	}
	return out
}
