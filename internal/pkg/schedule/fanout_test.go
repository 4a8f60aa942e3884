package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut(t *testing.T) {
	lessonDate := date(2024, 3, 18)

	tests := []struct {
		name        string
		enrollments []Enrollment
		wantIDs     []int64 // nil entry impossible; empty slice means single placeholder
	}{
		{
			name: "All enrollments active and enrolled in time",
			enrollments: []Enrollment{
				{StudentID: 1, EnrolledAt: date(2024, 1, 10), Active: true},
				{StudentID: 2, EnrolledAt: date(2024, 2, 1), Active: true},
				{StudentID: 3, EnrolledAt: date(2024, 3, 18), Active: true},
			},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name: "Future enrollment excluded",
			enrollments: []Enrollment{
				{StudentID: 1, EnrolledAt: date(2024, 1, 10), Active: true},
				{StudentID: 2, EnrolledAt: date(2024, 3, 19), Active: true},
			},
			wantIDs: []int64{1},
		},
		{
			name: "Inactive enrollment excluded",
			enrollments: []Enrollment{
				{StudentID: 1, EnrolledAt: date(2024, 1, 10), Active: false},
				{StudentID: 2, EnrolledAt: date(2024, 1, 10), Active: true},
			},
			wantIDs: []int64{2},
		},
		{
			name:        "No enrollments yields one placeholder",
			enrollments: nil,
			wantIDs:     []int64{},
		},
		{
			name: "No qualifying enrollments yields one placeholder",
			enrollments: []Enrollment{
				{StudentID: 1, EnrolledAt: date(2024, 4, 1), Active: true},
				{StudentID: 2, EnrolledAt: date(2024, 1, 1), Active: false},
			},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FanOut(lessonDate, tt.enrollments)

			if len(tt.wantIDs) == 0 {
				require.Len(t, got, 1, "placeholder must be exactly one candidate")
				assert.Nil(t, got[0].StudentID)
				assert.Equal(t, lessonDate, got[0].Date)
				return
			}

			require.Len(t, got, len(tt.wantIDs))
			for i, c := range got {
				require.NotNil(t, c.StudentID)
				assert.Equal(t, tt.wantIDs[i], *c.StudentID)
				assert.Equal(t, lessonDate, c.Date)
			}
		})
	}
}

// Enrollment made later the same calendar day still counts for that date.
func TestFanOut_SameDayEnrollment(t *testing.T) {
	enrolledAt := time.Date(2024, 3, 18, 15, 45, 0, 0, time.UTC)
	got := FanOut(date(2024, 3, 18), []Enrollment{{StudentID: 7, EnrolledAt: enrolledAt, Active: true}})

	require.Len(t, got, 1)
	require.NotNil(t, got[0].StudentID)
	assert.Equal(t, int64(7), *got[0].StudentID)
}
