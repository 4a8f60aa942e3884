package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// --- in-memory fakes ---

type stubCourses struct {
	courses []*models.Course
}

func (s *stubCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *stubCourses) GetAllActive(_ context.Context) ([]*models.Course, error) {
	var active []*models.Course
	for _, c := range s.courses {
		if c.Status == models.CourseActive {
			active = append(active, c)
		}
	}
	return active, nil
}

type stubHolidays struct {
	holidays []*models.Holiday
}

func (s *stubHolidays) GetOverlapping(_ context.Context, from, to time.Time) ([]*models.Holiday, error) {
	var out []*models.Holiday
	for _, h := range s.holidays {
		if !h.StartDate.After(to) && !h.EndDate.Before(from) {
			out = append(out, h)
		}
	}
	return out, nil
}

type memLessonStore struct {
	lessons []*models.Lesson
	nextID  int64
}

func (s *memLessonStore) GetByCourse(_ context.Context, courseID int64, from, to time.Time) ([]*models.Lesson, error) {
	var out []*models.Lesson
	for _, l := range s.lessons {
		if l.CourseID != courseID {
			continue
		}
		if !from.IsZero() && l.LessonDate.Before(from) {
			continue
		}
		if !to.IsZero() && l.LessonDate.After(to) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *memLessonStore) CreateBatch(ctx context.Context, lessons []*models.Lesson) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, l := range lessons {
		s.nextID++
		l.ID = s.nextID
		s.lessons = append(s.lessons, l)
	}
	return nil
}

// --- helpers ---

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weeklyCourse(id int64, weekday time.Weekday) *models.Course {
	return &models.Course{
		ID:        id,
		Name:      "Piano Basics",
		Category:  models.CategoryIndividual,
		TeacherID: 1,
		Weekday:   weekday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Frequency: models.FrequencyWeekly,
		StartDate: day(2024, 1, 8),
		Status:    models.CourseActive,
	}
}

func enroll(course *models.Course, studentID int64, since time.Time, status models.EnrollmentStatus) {
	course.Enrollments = append(course.Enrollments, &models.Enrollment{
		ID:         int64(len(course.Enrollments) + 1),
		CourseID:   course.ID,
		StudentID:  studentID,
		EnrolledAt: since,
		Status:     status,
	})
}

func newService(courses []*models.Course, holidays []*models.Holiday, store *memLessonStore) *GenerationService {
	return NewGenerationService(&stubCourses{courses: courses}, &stubHolidays{holidays: holidays}, store)
}

// --- single-course generation ---

func TestGenerateForCourse_Weekly(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	enroll(course, 10, day(2024, 1, 8), models.EnrollmentActive)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 4, res.Created)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, store.lessons, 4)

	wantDates := []time.Time{day(2024, 3, 4), day(2024, 3, 11), day(2024, 3, 18), day(2024, 3, 25)}
	for i, l := range store.lessons {
		assert.Equal(t, wantDates[i], l.LessonDate)
		assert.Equal(t, "10:00", l.StartTime)
		assert.Equal(t, "11:00", l.EndTime)
		assert.Equal(t, models.LessonScheduled, l.Status)
		require.NotNil(t, l.StudentID)
		assert.Equal(t, int64(10), *l.StudentID)
	}
}

func TestGenerateForCourse_SkipHolidays(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	enroll(course, 10, day(2024, 1, 8), models.EnrollmentActive)
	holidays := []*models.Holiday{
		{ID: 1, Name: "School Closure", StartDate: day(2024, 3, 11), EndDate: day(2024, 3, 11)},
	}
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, holidays, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), true)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 1, res.Skipped)
	for _, l := range store.lessons {
		assert.NotEqual(t, day(2024, 3, 11), l.LessonDate)
	}
}

func TestGenerateForCourse_HolidaysIgnoredWhenFlagOff(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	enroll(course, 10, day(2024, 1, 8), models.EnrollmentActive)
	holidays := []*models.Holiday{
		{ID: 1, Name: "School Closure", StartDate: day(2024, 3, 11), EndDate: day(2024, 3, 11)},
	}
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, holidays, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 4, res.Created)
	assert.Equal(t, 0, res.Skipped)
}

func TestGenerateForCourse_BiweeklyOddAcrossYearBoundary(t *testing.T) {
	course := weeklyCourse(1, time.Wednesday)
	course.Frequency = models.FrequencyBiweekly
	course.WeekParity = schedule.ParityOdd
	enroll(course, 10, day(2026, 1, 1), models.EnrollmentActive)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2026, 12, 21), day(2027, 1, 31), false)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 0, res.Skipped)

	wantDates := []time.Time{day(2026, 12, 30), day(2027, 1, 6), day(2027, 1, 20)}
	require.Len(t, store.lessons, 3)
	for i, l := range store.lessons {
		assert.Equal(t, wantDates[i], l.LessonDate)
	}
}

func TestGenerateForCourse_GroupFanOut(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	course.Category = models.CategoryGroup
	for id := int64(1); id <= 5; id++ {
		enroll(course, id, day(2024, 1, 8), models.EnrollmentActive)
	}
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 20, res.Created)

	perDate := map[time.Time]int{}
	for _, l := range store.lessons {
		perDate[l.LessonDate]++
	}
	require.Len(t, perDate, 4)
	for d, n := range perDate {
		assert.Equalf(t, 5, n, "expected 5 lessons on %s", d.Format("2006-01-02"))
	}
}

func TestGenerateForCourse_PlaceholderWhenNoEnrollments(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 4, res.Created)
	for _, l := range store.lessons {
		assert.Nil(t, l.StudentID)
	}
}

func TestGenerateForCourse_EnrollmentDateBoundary(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	enroll(course, 10, day(2024, 3, 18), models.EnrollmentActive)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	// Two placeholder lessons before the enrollment, two assigned after.
	assert.Equal(t, 4, res.Created)

	var placeholders, assigned int
	for _, l := range store.lessons {
		if l.StudentID == nil {
			placeholders++
			assert.True(t, l.LessonDate.Before(day(2024, 3, 18)))
		} else {
			assigned++
			assert.False(t, l.LessonDate.Before(day(2024, 3, 18)))
		}
	}
	assert.Equal(t, 2, placeholders)
	assert.Equal(t, 2, assigned)
}

func TestGenerateForCourse_Idempotent(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	enroll(course, 10, day(2024, 1, 8), models.EnrollmentActive)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	first, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)
	require.NoError(t, err)
	require.Equal(t, 4, first.Created)

	second, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 4, second.Skipped)
	assert.Len(t, store.lessons, 4)
}

func TestGenerateForCourse_NewStudentAfterFirstRun(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	enroll(course, 10, day(2024, 1, 8), models.EnrollmentActive)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	_, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)
	require.NoError(t, err)

	// A second student joins; only their lessons are new on the re-run.
	enroll(course, 11, day(2024, 1, 8), models.EnrollmentActive)
	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 4, res.Created)
	assert.Equal(t, 4, res.Skipped)
	assert.Len(t, store.lessons, 8)
}

func TestGenerateForCourse_InvertedRange(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 3, 25), day(2024, 3, 4), false)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 0, res.Skipped)
	assert.Empty(t, store.lessons)
}

func TestGenerateForCourse_NotFound(t *testing.T) {
	svc := newService(nil, nil, &memLessonStore{})

	_, err := svc.GenerateForCourse(context.Background(), 42, day(2024, 3, 4), day(2024, 3, 25), false)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.GenerateForCourse(context.Background(), 0, day(2024, 3, 4), day(2024, 3, 25), false)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGenerateForCourse_MonthlyOrdinalClamping(t *testing.T) {
	course := weeklyCourse(1, time.Wednesday)
	course.Frequency = models.FrequencyMonthly
	enroll(course, 10, day(2024, 1, 1), models.EnrollmentActive)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	// 2024-01-31 is the 5th Wednesday of January; later months clamp to
	// their last Wednesday.
	res, err := svc.GenerateForCourse(context.Background(), 1, day(2024, 1, 31), day(2024, 3, 31), false)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)

	wantDates := []time.Time{day(2024, 1, 31), day(2024, 2, 28), day(2024, 3, 27)}
	require.Len(t, store.lessons, 3)
	for i, l := range store.lessons {
		assert.Equal(t, wantDates[i], l.LessonDate)
	}
}

// --- bulk generation ---

func TestGenerateBulk_CountsOnlyActiveCourses(t *testing.T) {
	active1 := weeklyCourse(1, time.Monday)
	enroll(active1, 10, day(2024, 1, 8), models.EnrollmentActive)
	active2 := weeklyCourse(2, time.Tuesday)
	active3 := weeklyCourse(3, time.Friday)
	paused := weeklyCourse(4, time.Monday)
	paused.Status = models.CoursePaused

	store := &memLessonStore{}
	svc := newService([]*models.Course{active1, active2, active3, paused}, nil, store)

	res, err := svc.GenerateBulk(context.Background(), day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 3, res.CoursesProcessed)

	for _, l := range store.lessons {
		assert.NotEqual(t, int64(4), l.CourseID, "paused course must not generate lessons")
	}
}

func TestGenerateBulk_OmitsZeroCreatedCoursesFromBreakdown(t *testing.T) {
	withLessons := weeklyCourse(1, time.Monday)
	enroll(withLessons, 10, day(2024, 1, 8), models.EnrollmentActive)
	// This course's occurrences already exist, so it creates nothing.
	exhausted := weeklyCourse(2, time.Monday)
	enroll(exhausted, 20, day(2024, 1, 8), models.EnrollmentActive)

	sid := int64(20)
	store := &memLessonStore{}
	for _, d := range []time.Time{day(2024, 3, 4), day(2024, 3, 11), day(2024, 3, 18), day(2024, 3, 25)} {
		store.nextID++
		store.lessons = append(store.lessons, &models.Lesson{
			ID: store.nextID, CourseID: 2, StudentID: &sid, LessonDate: d,
			StartTime: "10:00", EndTime: "11:00", Status: models.LessonScheduled,
		})
	}

	svc := newService([]*models.Course{withLessons, exhausted}, nil, store)
	res, err := svc.GenerateBulk(context.Background(), day(2024, 3, 4), day(2024, 3, 25), false)

	require.NoError(t, err)
	assert.Equal(t, 2, res.CoursesProcessed)
	assert.Equal(t, 4, res.TotalCreated)
	assert.Equal(t, 4, res.TotalSkipped)
	require.Len(t, res.Courses, 1)
	assert.Equal(t, int64(1), res.Courses[0].CourseID)
}

func TestGenerateBulk_Cancellation(t *testing.T) {
	course := weeklyCourse(1, time.Monday)
	store := &memLessonStore{}
	svc := newService([]*models.Course{course}, nil, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateBulk(ctx, day(2024, 3, 4), day(2024, 3, 25), false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.lessons)
}
