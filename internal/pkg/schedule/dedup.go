package schedule

import "time"

// OccurrenceKey identifies a lesson occurrence within one course for
// deduplication: the calendar date plus the participant. Placeholder
// occurrences use StudentID 0 with HasStudent false, so they never collide
// with a real participant's occurrences on the same date.
type OccurrenceKey struct {
	Date       string
	StudentID  int64
	HasStudent bool
}

// keyDateLayout is the canonical date representation inside OccurrenceKey.
const keyDateLayout = "2006-01-02"

// NewOccurrenceKey builds the key for a date and an optional participant.
func NewOccurrenceKey(date time.Time, studentID *int64) OccurrenceKey {
	k := OccurrenceKey{Date: DateOf(date).Format(keyDateLayout)}
	if studentID != nil {
		k.StudentID = *studentID
		k.HasStudent = true
	}
	return k
}

// OccurrenceSet is a hash set of occurrence keys for one course, used to
// filter out candidates that already exist in the store.
type OccurrenceSet map[OccurrenceKey]struct{}

// NewOccurrenceSet returns an empty set.
func NewOccurrenceSet() OccurrenceSet {
	return make(OccurrenceSet)
}

// Add records an occurrence.
func (s OccurrenceSet) Add(date time.Time, studentID *int64) {
	s[NewOccurrenceKey(date, studentID)] = struct{}{}
}

// Contains reports whether an occurrence with the same date and participant
// was already recorded.
func (s OccurrenceSet) Contains(date time.Time, studentID *int64) bool {
	_, ok := s[NewOccurrenceKey(date, studentID)]
	return ok
}

// Partition splits candidates into those to create and those already present
// in existing. Order is preserved within each slice.
func Partition(candidates []Candidate, existing OccurrenceSet) (create, skip []Candidate) {
	for _, c := range candidates {
		if existing.Contains(c.Date, c.StudentID) {
			skip = append(skip, c)
		} else {
			create = append(create, c)
		}
	}
	return create, skip
}
