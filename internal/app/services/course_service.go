package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/helpers"
	"github.com/okandemir/melodia/internal/pkg/ics"
	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// CourseService defines the interface for course and enrollment management
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error

	EnrollStudent(ctx context.Context, courseID int64, req *dto.EnrollStudentRequest) (*models.Enrollment, error)
	GetEnrollments(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, enrollmentID int64, status models.EnrollmentStatus) error

	CourseLessons(ctx context.Context, courseID int64, from, to string) ([]*models.Lesson, error)
	CourseCalendar(ctx context.Context, courseID int64) (string, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	lessonRepo     *repositories.LessonRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	lessonRepo *repositories.LessonRepository,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		lessonRepo:     lessonRepo,
	}
}

// buildCourse converts and validates the request fields shared by create and
// update into a course model.
func buildCourse(name, category string, teacherID int64, roomID *int64, weekday int,
	startTime, endTime, frequency, weekParity, startDate string) (*models.Course, error) {

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be between 0 (Sunday) and 6 (Saturday)", apperrors.ErrValidationFailed)
	}
	if !helpers.ValidClockTime(startTime) {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", apperrors.ErrValidationFailed)
	}
	if !helpers.ValidClockTime(endTime) {
		return nil, fmt.Errorf("%w: endTime must be HH:MM", apperrors.ErrValidationFailed)
	}
	if endTime <= startTime {
		// HH:MM strings compare chronologically.
		return nil, fmt.Errorf("%w: endTime must be after startTime", apperrors.ErrValidationFailed)
	}

	parity := schedule.Parity(weekParity)
	if weekParity != "" && models.Frequency(frequency) != models.FrequencyBiweekly {
		return nil, fmt.Errorf("%w: weekParity applies only to BIWEEKLY courses", apperrors.ErrValidationFailed)
	}
	if models.Frequency(frequency) == models.FrequencyBiweekly && parity == "" {
		parity = schedule.ParityAll
	}

	start, err := helpers.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	return &models.Course{
		Name:       strings.TrimSpace(name),
		Category:   models.CourseCategory(category),
		TeacherID:  teacherID,
		RoomID:     roomID,
		Weekday:    time.Weekday(weekday),
		StartTime:  startTime,
		EndTime:    endTime,
		Frequency:  models.Frequency(frequency),
		WeekParity: parity,
		StartDate:  start,
		Status:     models.CourseActive,
	}, nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course, err := buildCourse(req.Name, req.Category, req.TeacherID, req.RoomID, req.Weekday,
		req.StartTime, req.EndTime, req.Frequency, req.WeekParity, req.StartDate)
	if err != nil {
		return nil, err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseTeacherMissing) {
			return nil, apperrors.ErrTeacherNotFound
		}
		if errors.Is(err, repositories.ErrCourseRoomMissing) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	course.ID = id

	return course, nil
}

// GetCourseByID retrieves a course with its enrollments
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course. Already generated lessons are not
// touched; the new schedule only affects future generation runs.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	course, err := buildCourse(req.Name, req.Category, req.TeacherID, req.RoomID, req.Weekday,
		req.StartTime, req.EndTime, req.Frequency, req.WeekParity, req.StartDate)
	if err != nil {
		return nil, err
	}
	course.ID = id
	course.Status = models.CourseStatus(req.Status)

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		if errors.Is(err, repositories.ErrCourseTeacherMissing) {
			return nil, apperrors.ErrTeacherNotFound
		}
		if errors.Is(err, repositories.ErrCourseRoomMissing) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteCourse deletes a course and its dependent enrollments and lessons
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrCourseNotFound
	}

	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// EnrollStudent enrolls a student in a course. The enrollment day defaults to
// today; lessons are only generated for dates on or after it.
func (s *courseServiceImpl) EnrollStudent(ctx context.Context, courseID int64, req *dto.EnrollStudentRequest) (*models.Enrollment, error) {
	if courseID <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	enrolledAt := schedule.DateOf(time.Now().UTC())
	if req.EnrolledAt != "" {
		parsed, err := helpers.ParseDate(req.EnrolledAt)
		if err != nil {
			return nil, fmt.Errorf("%w: enrolledAt must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		enrolledAt = parsed
	}

	enrollment := &models.Enrollment{
		CourseID:   courseID,
		StudentID:  req.StudentID,
		EnrolledAt: enrolledAt,
		Status:     models.EnrollmentActive,
	}

	id, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyEnrolled) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		if errors.Is(err, repositories.ErrEnrollmentRefMissing) {
			return nil, apperrors.NewResourceNotFoundError("course or student does not exist")
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	enrollment.ID = id

	return enrollment, nil
}

// GetEnrollments lists all enrollments of a course with student details
func (s *courseServiceImpl) GetEnrollments(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if _, err := s.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// UpdateEnrollmentStatus activates or deactivates an enrollment
func (s *courseServiceImpl) UpdateEnrollmentStatus(ctx context.Context, enrollmentID int64, status models.EnrollmentStatus) error {
	if enrollmentID <= 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	err := s.enrollmentRepo.UpdateStatus(ctx, enrollmentID, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error updating enrollment status: %w", err)
	}
	return nil
}

// CourseLessons lists a course's lessons, optionally bounded by an inclusive
// date range given as YYYY-MM-DD strings.
func (s *courseServiceImpl) CourseLessons(ctx context.Context, courseID int64, from, to string) ([]*models.Lesson, error) {
	if _, err := s.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	var fromDate, toDate time.Time
	var err error
	if from != "" {
		if fromDate, err = helpers.ParseDate(from); err != nil {
			return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
	}
	if to != "" {
		if toDate, err = helpers.ParseDate(to); err != nil {
			return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
	}
	if !fromDate.IsZero() && !toDate.IsZero() && toDate.Before(fromDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	lessons, err := s.lessonRepo.GetByCourse(ctx, courseID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lessons: %w", err)
	}
	return lessons, nil
}

// CourseCalendar renders all lessons of a course as an iCalendar document
func (s *courseServiceImpl) CourseCalendar(ctx context.Context, courseID int64) (string, error) {
	course, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	lessons, err := s.lessonRepo.GetByCourseWithStudents(ctx, courseID)
	if err != nil {
		return "", fmt.Errorf("error retrieving lessons: %w", err)
	}

	return ics.BuildCourseCalendar(course, lessons), nil
}
