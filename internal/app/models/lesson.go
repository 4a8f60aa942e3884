package models

import "time"

// LessonStatus is the lifecycle state of a single lesson occurrence.
type LessonStatus string

// Lesson statuses
const (
	LessonScheduled LessonStatus = "SCHEDULED"
	LessonCompleted LessonStatus = "COMPLETED"
	LessonCancelled LessonStatus = "CANCELLED"
	LessonMissed    LessonStatus = "MISSED"
)

// Lesson is one dated, timed occurrence of a course, optionally assigned to a
// student. A nil StudentID marks an unassigned placeholder created while the
// course had no active enrollment on that date. Uniqueness within a course is
// (lesson_date, student_id-or-null).
type Lesson struct {
	ID         int64        `json:"id" db:"id"`
	CourseID   int64        `json:"courseId" db:"course_id"`
	StudentID  *int64       `json:"studentId,omitempty" db:"student_id"` // Nullable
	LessonDate time.Time    `json:"lessonDate" db:"lesson_date"`
	StartTime  string       `json:"startTime" db:"start_time"` // HH:MM, copied from the course
	EndTime    string       `json:"endTime" db:"end_time"`     // HH:MM, copied from the course
	Status     LessonStatus `json:"status" db:"status"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Course  *Course  `json:"course,omitempty"`
	Student *Student `json:"student,omitempty"`
}
