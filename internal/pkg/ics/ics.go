// Package ics renders course schedules as iCalendar feeds so lessons can be
// subscribed to from external calendar clients.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/okandemir/melodia/internal/app/models"
)

const prodID = "-//melodia//lesson-calendar//EN"

// BuildCourseCalendar renders the lessons of one course as an iCalendar
// document. Each lesson becomes one VEVENT; the event times combine the
// lesson date with the course's HH:MM start and end times. Lessons whose
// clock times do not parse are emitted as all-day events rather than
// dropped.
func BuildCourseCalendar(course *models.Course, lessons []*models.Lesson) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetName(course.Name)

	for _, lesson := range lessons {
		uid := fmt.Sprintf("lesson-%d@melodia", lesson.ID)
		event := cal.AddEvent(uid)
		event.SetCreatedTime(lesson.CreatedAt)
		event.SetDtStampTime(time.Now().UTC())
		event.SetSummary(eventSummary(course, lesson))

		start, okStart := combine(lesson.LessonDate, lesson.StartTime)
		end, okEnd := combine(lesson.LessonDate, lesson.EndTime)
		if okStart && okEnd {
			event.SetStartAt(start)
			event.SetEndAt(end)
		} else {
			event.SetAllDayStartAt(lesson.LessonDate)
			event.SetAllDayEndAt(lesson.LessonDate.AddDate(0, 0, 1))
		}

		if course.Room != nil {
			event.SetLocation(course.Room.Name)
		}
		if lesson.Status != models.LessonScheduled {
			event.SetDescription(fmt.Sprintf("Status: %s", lesson.Status))
		}
	}

	return cal.Serialize()
}

func eventSummary(course *models.Course, lesson *models.Lesson) string {
	if lesson.Student != nil {
		return fmt.Sprintf("%s - %s %s", course.Name, lesson.Student.FirstName, lesson.Student.LastName)
	}
	if lesson.StudentID == nil {
		return fmt.Sprintf("%s (unassigned)", course.Name)
	}
	return course.Name
}

// combine merges a midnight date with an HH:MM clock time.
func combine(date time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), true
}
