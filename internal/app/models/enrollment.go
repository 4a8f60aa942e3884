package models

import "time"

// EnrollmentStatus is the state of a student's enrollment in a course.
type EnrollmentStatus string

// Enrollment statuses
const (
	EnrollmentActive   EnrollmentStatus = "ACTIVE"
	EnrollmentInactive EnrollmentStatus = "INACTIVE"
)

// Enrollment ties one student to one course. A student only receives lessons
// for dates on or after their enrollment day, and only while active.
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	CourseID   int64            `json:"courseId" db:"course_id"`
	StudentID  int64            `json:"studentId" db:"student_id"`
	EnrolledAt time.Time        `json:"enrolledAt" db:"enrolled_at"`
	Status     EnrollmentStatus `json:"status" db:"status"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}
