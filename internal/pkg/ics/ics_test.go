package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/melodia/internal/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCourseCalendar(t *testing.T) {
	roomName := "Room A"
	course := &models.Course{
		ID:        1,
		Name:      "Piano Basics",
		StartTime: "10:00",
		EndTime:   "10:45",
		Room:      &models.Room{Name: roomName},
	}

	studentID := int64(5)
	lessons := []*models.Lesson{
		{
			ID:         1,
			CourseID:   1,
			StudentID:  &studentID,
			Student:    &models.Student{ID: studentID, FirstName: "Ada", LastName: "Lovelace"},
			LessonDate: day(2024, time.March, 4),
			StartTime:  "10:00",
			EndTime:    "10:45",
			Status:     models.LessonScheduled,
		},
		{
			ID:         2,
			CourseID:   1,
			LessonDate: day(2024, time.March, 11),
			StartTime:  "10:00",
			EndTime:    "10:45",
			Status:     models.LessonCancelled,
		},
	}

	out := BuildCourseCalendar(course, lessons)
	require.NotEmpty(t, out)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, prodID)
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))

	assert.Contains(t, out, "UID:lesson-1@melodia")
	assert.Contains(t, out, "SUMMARY:Piano Basics - Ada Lovelace")
	assert.Contains(t, out, "DTSTART:20240304T100000Z")
	assert.Contains(t, out, "DTEND:20240304T104500Z")
	assert.Contains(t, out, "LOCATION:Room A")

	// Placeholder lesson has no student and carries its non-default status.
	assert.Contains(t, out, "UID:lesson-2@melodia")
	assert.Contains(t, out, "SUMMARY:Piano Basics (unassigned)")
	assert.Contains(t, out, "DESCRIPTION:Status: CANCELLED")
}

func TestBuildCourseCalendar_UnparsableTimesFallBackToAllDay(t *testing.T) {
	course := &models.Course{ID: 2, Name: "Choir"}
	lessons := []*models.Lesson{
		{
			ID:         9,
			CourseID:   2,
			LessonDate: day(2024, time.June, 1),
			StartTime:  "whenever",
			EndTime:    "later",
			Status:     models.LessonScheduled,
		},
	}

	out := BuildCourseCalendar(course, lessons)
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240601")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240602")
}

func TestBuildCourseCalendar_EmptyCourse(t *testing.T) {
	course := &models.Course{ID: 3, Name: "Empty"}

	out := BuildCourseCalendar(course, nil)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
