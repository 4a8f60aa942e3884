package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/schedule"
)

func TestBuildCourse_Valid(t *testing.T) {
	roomID := int64(3)
	course, err := buildCourse("  Piano Basics ", "INDIVIDUAL", 2, &roomID, 1,
		"10:00", "10:45", "WEEKLY", "", "2024-03-04")
	require.NoError(t, err)

	assert.Equal(t, "Piano Basics", course.Name)
	assert.Equal(t, models.CategoryIndividual, course.Category)
	assert.Equal(t, int64(2), course.TeacherID)
	assert.Equal(t, &roomID, course.RoomID)
	assert.Equal(t, time.Monday, course.Weekday)
	assert.Equal(t, models.FrequencyWeekly, course.Frequency)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), course.StartDate)
	assert.Equal(t, models.CourseActive, course.Status)
}

func TestBuildCourse_BiweeklyParityDefaultsToAll(t *testing.T) {
	course, err := buildCourse("Violin", "INDIVIDUAL", 2, nil, 3,
		"14:00", "15:00", "BIWEEKLY", "", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, schedule.ParityAll, course.WeekParity)

	course, err = buildCourse("Violin", "INDIVIDUAL", 2, nil, 3,
		"14:00", "15:00", "BIWEEKLY", "ODD", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, schedule.ParityOdd, course.WeekParity)
}

func TestBuildCourse_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		courseName string
		weekday    int
		startTime  string
		endTime    string
		frequency  string
		weekParity string
		startDate  string
	}{
		{name: "empty name", courseName: "   ", weekday: 1, startTime: "10:00", endTime: "11:00", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "weekday too small", courseName: "Piano", weekday: -1, startTime: "10:00", endTime: "11:00", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "weekday too large", courseName: "Piano", weekday: 7, startTime: "10:00", endTime: "11:00", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "bad start time", courseName: "Piano", weekday: 1, startTime: "25:00", endTime: "11:00", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "bad end time", courseName: "Piano", weekday: 1, startTime: "10:00", endTime: "9am", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "end not after start", courseName: "Piano", weekday: 1, startTime: "10:00", endTime: "10:00", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "end before start", courseName: "Piano", weekday: 1, startTime: "10:00", endTime: "09:30", frequency: "WEEKLY", startDate: "2024-03-04"},
		{name: "parity on weekly course", courseName: "Piano", weekday: 1, startTime: "10:00", endTime: "11:00", frequency: "WEEKLY", weekParity: "ODD", startDate: "2024-03-04"},
		{name: "parity on monthly course", courseName: "Piano", weekday: 1, startTime: "10:00", endTime: "11:00", frequency: "MONTHLY", weekParity: "EVEN", startDate: "2024-03-04"},
		{name: "bad start date", courseName: "Piano", weekday: 1, startTime: "10:00", endTime: "11:00", frequency: "WEEKLY", startDate: "04.03.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildCourse(tt.courseName, "INDIVIDUAL", 2, nil, tt.weekday,
				tt.startTime, tt.endTime, tt.frequency, tt.weekParity, tt.startDate)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}
