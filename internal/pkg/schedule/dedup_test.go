package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id int64) *int64 { return &id }

func TestOccurrenceSet(t *testing.T) {
	s := NewOccurrenceSet()
	s.Add(date(2024, 3, 4), ptr(1))
	s.Add(date(2024, 3, 4), nil)

	assert.True(t, s.Contains(date(2024, 3, 4), ptr(1)))
	assert.True(t, s.Contains(date(2024, 3, 4), nil))
	assert.False(t, s.Contains(date(2024, 3, 4), ptr(2)))
	assert.False(t, s.Contains(date(2024, 3, 11), ptr(1)))
}

// A placeholder occurrence and a student occurrence on the same date are
// distinct records and must not shadow each other.
func TestOccurrenceSet_PlaceholderDistinctFromStudent(t *testing.T) {
	s := NewOccurrenceSet()
	s.Add(date(2024, 3, 4), nil)

	assert.False(t, s.Contains(date(2024, 3, 4), ptr(0)))
	assert.True(t, s.Contains(date(2024, 3, 4), nil))
}

func TestPartition(t *testing.T) {
	existing := NewOccurrenceSet()
	existing.Add(date(2024, 3, 4), ptr(1))
	existing.Add(date(2024, 3, 11), nil)

	candidates := []Candidate{
		{Date: date(2024, 3, 4), StudentID: ptr(1)},  // duplicate
		{Date: date(2024, 3, 4), StudentID: ptr(2)},  // new participant, same date
		{Date: date(2024, 3, 11)},                    // duplicate placeholder
		{Date: date(2024, 3, 18), StudentID: ptr(1)}, // new date
	}

	create, skip := Partition(candidates, existing)

	require.Len(t, create, 2)
	require.Len(t, skip, 2)
	assert.Equal(t, date(2024, 3, 4), create[0].Date)
	assert.Equal(t, int64(2), *create[0].StudentID)
	assert.Equal(t, date(2024, 3, 18), create[1].Date)
	assert.Equal(t, date(2024, 3, 4), skip[0].Date)
	assert.Nil(t, skip[1].StudentID)
}

func TestPartition_EmptyExisting(t *testing.T) {
	candidates := []Candidate{
		{Date: date(2024, 3, 4), StudentID: ptr(1)},
		{Date: date(2024, 3, 11), StudentID: ptr(1)},
	}

	create, skip := Partition(candidates, NewOccurrenceSet())
	assert.Len(t, create, 2)
	assert.Empty(t, skip)
}
