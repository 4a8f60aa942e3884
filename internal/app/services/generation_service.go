package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/logger"
	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// CourseReader supplies courses (with enrollments) to the generator.
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllActive(ctx context.Context) ([]*models.Course, error)
}

// HolidayReader supplies the holiday calendar overlapping a date range.
type HolidayReader interface {
	GetOverlapping(ctx context.Context, from, to time.Time) ([]*models.Holiday, error)
}

// LessonStore supplies already-persisted lesson occurrences and persists the
// newly generated ones.
type LessonStore interface {
	GetByCourse(ctx context.Context, courseID int64, from, to time.Time) ([]*models.Lesson, error)
	CreateBatch(ctx context.Context, lessons []*models.Lesson) error
}

// GenerationService expands course recurrence rules into concrete lesson
// occurrences. Runs are idempotent: occurrences that already exist for a
// course are counted as skipped, never duplicated.
type GenerationService struct {
	courses  CourseReader
	holidays HolidayReader
	lessons  LessonStore
}

// NewGenerationService creates a new generation service instance
func NewGenerationService(courses CourseReader, holidays HolidayReader, lessons LessonStore) *GenerationService {
	return &GenerationService{
		courses:  courses,
		holidays: holidays,
		lessons:  lessons,
	}
}

// GenerateForCourse generates lessons for one course over the inclusive date
// range [from, to]. An unknown course returns apperrors.ErrCourseNotFound; an
// inverted range is not an error and yields a zero result.
func (s *GenerationService) GenerateForCourse(ctx context.Context, courseID int64, from, to time.Time, skipHolidays bool) (*models.GenerationResult, error) {
	if courseID <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error loading course: %w", err)
	}

	return s.generate(ctx, course, from, to, skipHolidays)
}

// GenerateBulk generates lessons for every ACTIVE course over the same range.
// Each course is processed independently: a course that yields nothing still
// counts as processed, and only courses with at least one new lesson appear
// in the per-course breakdown. Cancellation aborts the run.
func (s *GenerationService) GenerateBulk(ctx context.Context, from, to time.Time, skipHolidays bool) (*models.BulkGenerationResult, error) {
	courses, err := s.courses.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading active courses: %w", err)
	}

	result := &models.BulkGenerationResult{Courses: []*models.GenerationResult{}}
	for _, course := range courses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := s.generate(ctx, course, from, to, skipHolidays)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			// A failing course must not sink the whole run.
			logger.Error().Err(err).Int64("courseID", course.ID).Msg("Lesson generation failed for course")
			result.CoursesProcessed++
			continue
		}

		result.CoursesProcessed++
		result.TotalCreated += res.Created
		result.TotalSkipped += res.Skipped
		if res.Created > 0 {
			result.Courses = append(result.Courses, res)
		}
	}

	return result, nil
}

// generate runs the full pipeline for one already-loaded course:
// sequencing, holiday filtering, participant fan-out, deduplication,
// and persistence of the surviving occurrences.
func (s *GenerationService) generate(ctx context.Context, course *models.Course, from, to time.Time, skipHolidays bool) (*models.GenerationResult, error) {
	result := &models.GenerationResult{CourseID: course.ID, CourseName: course.Name}

	from, to = schedule.DateOf(from), schedule.DateOf(to)
	if from.After(to) {
		return result, nil
	}

	dates := course.Recurrence().Expand(course.Weekday, from, to)
	if len(dates) == 0 {
		return result, nil
	}

	var holidays []schedule.Holiday
	if skipHolidays {
		records, err := s.holidays.GetOverlapping(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("error loading holidays: %w", err)
		}
		holidays = make([]schedule.Holiday, 0, len(records))
		for _, h := range records {
			holidays = append(holidays, h.Interval())
		}
	}

	persisted, err := s.lessons.GetByCourse(ctx, course.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error loading existing lessons: %w", err)
	}
	existing := schedule.NewOccurrenceSet()
	for _, lesson := range persisted {
		existing.Add(lesson.LessonDate, lesson.StudentID)
	}

	enrollments := course.EngineEnrollments()

	for _, date := range dates {
		if skipHolidays && schedule.IsHoliday(date, holidays) {
			// One skip per blocked date; no fan-out happens.
			result.Skipped++
			continue
		}

		create, skip := schedule.Partition(schedule.FanOut(date, enrollments), existing)
		result.Skipped += len(skip)

		for _, c := range create {
			existing.Add(c.Date, c.StudentID)
			result.Lessons = append(result.Lessons, &models.Lesson{
				CourseID:   course.ID,
				StudentID:  c.StudentID,
				LessonDate: c.Date,
				StartTime:  course.StartTime,
				EndTime:    course.EndTime,
				Status:     models.LessonScheduled,
			})
			result.Created++
		}
	}

	if len(result.Lessons) > 0 {
		if err := s.lessons.CreateBatch(ctx, result.Lessons); err != nil {
			return nil, fmt.Errorf("error persisting generated lessons: %w", err)
		}
	}

	return result, nil
}
