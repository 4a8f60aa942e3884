package models

import (
	"time"

	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// CourseCategory classifies a course. The category is informational; lesson
// generation behaves identically for all of them.
type CourseCategory string

// Course categories
const (
	CategoryIndividual CourseCategory = "INDIVIDUAL"
	CategoryGroup      CourseCategory = "GROUP"
	CategoryWorkshop   CourseCategory = "WORKSHOP"
)

// Frequency is the stored cadence of a course.
type Frequency string

// Course frequencies
const (
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyBiweekly Frequency = "BIWEEKLY"
	// FrequencyMonthly recurs on the same ordinal weekday each month
	// (e.g. every second Tuesday).
	FrequencyMonthly Frequency = "MONTHLY"
)

// CourseStatus is the lifecycle state of a course.
type CourseStatus string

// Course statuses
const (
	CourseActive    CourseStatus = "ACTIVE"
	CoursePaused    CourseStatus = "PAUSED"
	CourseCompleted CourseStatus = "COMPLETED"
	CourseCancelled CourseStatus = "CANCELLED"
)

// Course represents a recurring course taught at the school.
type Course struct {
	ID        int64          `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Category  CourseCategory `json:"category" db:"category"`
	TeacherID int64          `json:"teacherId" db:"teacher_id"`
	RoomID    *int64         `json:"roomId,omitempty" db:"room_id"` // Nullable
	Weekday   time.Weekday   `json:"weekday" db:"weekday"`
	StartTime string         `json:"startTime" db:"start_time"` // HH:MM
	EndTime   string         `json:"endTime" db:"end_time"`     // HH:MM
	Frequency Frequency      `json:"frequency" db:"frequency"`
	// WeekParity is stored flat but only consulted for BIWEEKLY courses;
	// Recurrence() folds it into the cadence variant.
	WeekParity schedule.Parity `json:"weekParity" db:"week_parity"`
	StartDate  time.Time       `json:"startDate" db:"start_date"`
	Status     CourseStatus    `json:"status" db:"status"`

	// Relations (populated when needed)
	Teacher     *Teacher      `json:"teacher,omitempty"`
	Room        *Room         `json:"room,omitempty"`
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}

// Recurrence converts the stored frequency columns into the cadence variant
// the schedule package expands. Unknown frequencies fall back to weekly.
func (c *Course) Recurrence() schedule.Recurrence {
	switch c.Frequency {
	case FrequencyBiweekly:
		parity := c.WeekParity
		if parity == "" {
			parity = schedule.ParityAll
		}
		return schedule.Biweekly{Parity: parity}
	case FrequencyMonthly:
		return schedule.MonthlyByWeekdayOrdinal{}
	default:
		return schedule.Weekly{}
	}
}

// EngineEnrollments projects the course's enrollments into the engine's view.
func (c *Course) EngineEnrollments() []schedule.Enrollment {
	out := make([]schedule.Enrollment, 0, len(c.Enrollments))
	for _, e := range c.Enrollments {
		out = append(out, schedule.Enrollment{
			StudentID:  e.StudentID,
			EnrolledAt: e.EnrolledAt,
			Active:     e.Status == EnrollmentActive,
		})
	}
	return out
}
