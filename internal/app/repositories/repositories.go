package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that matched no row.
// Per-entity sentinels alias it so callers can match either.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TeacherRepository    *TeacherRepository
	StudentRepository    *StudentRepository
	RoomRepository       *RoomRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	HolidayRepository    *HolidayRepository
	LessonRepository     *LessonRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		StudentRepository:    NewStudentRepository(db),
		RoomRepository:       NewRoomRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		HolidayRepository:    NewHolidayRepository(db),
		LessonRepository:     NewLessonRepository(db),
	}
}
