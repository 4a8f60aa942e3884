package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/pkg/dberrors"
	"github.com/okandemir/melodia/internal/pkg/logger"
)

// Course error types
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = ErrNotFound
	// ErrCourseTeacherMissing is returned when the referenced teacher does not exist.
	ErrCourseTeacherMissing = errors.New("referenced teacher does not exist")
	// ErrCourseRoomMissing is returned when the referenced room does not exist.
	ErrCourseRoomMissing = errors.New("referenced room does not exist")
)

const courseColumns = "id, name, category, teacher_id, room_id, weekday, start_time, end_time, frequency, week_parity, start_date, status"

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var weekday int
	err := row.Scan(
		&course.ID, &course.Name, &course.Category, &course.TeacherID, &course.RoomID,
		&weekday, &course.StartTime, &course.EndTime, &course.Frequency,
		&course.WeekParity, &course.StartDate, &course.Status,
	)
	if err != nil {
		return nil, err
	}
	course.Weekday = time.Weekday(weekday)
	return course, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "category", "teacher_id", "room_id", "weekday", "start_time", "end_time",
			"frequency", "week_parity", "start_date", "status").
		Values(course.Name, course.Category, course.TeacherID, course.RoomID, int(course.Weekday),
			course.StartTime, course.EndTime, course.Frequency, course.WeekParity,
			course.StartDate, course.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, ErrCourseTeacherMissing
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID, including its enrollments.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	enrollments, err := r.loadEnrollments(ctx, []int64{course.ID})
	if err != nil {
		return nil, err
	}
	course.Enrollments = enrollments[course.ID]

	return course, nil
}

// GetAll retrieves all courses ordered by name
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, nil)
}

// GetAllActive retrieves all courses with status ACTIVE, including their
// enrollments. This is the bulk generation working set.
func (r *CourseRepository) GetAllActive(ctx context.Context) ([]*models.Course, error) {
	courses, err := r.list(ctx, squirrel.Eq{"status": models.CourseActive})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return courses, nil
	}

	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	enrollments, err := r.loadEnrollments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		c.Enrollments = enrollments[c.ID]
	}

	return courses, nil
}

func (r *CourseRepository) list(ctx context.Context, where interface{}) ([]*models.Course, error) {
	builder := r.sb.Select(courseColumns).From("courses").OrderBy("name ASC")
	if where != nil {
		builder = builder.Where(where)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// loadEnrollments fetches enrollments for the given course IDs, grouped by
// course.
func (r *CourseRepository) loadEnrollments(ctx context.Context, courseIDs []int64) (map[int64][]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "course_id", "student_id", "enrolled_at", "status").
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseIDs}).
		OrderBy("enrolled_at ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building load enrollments SQL")
		return nil, fmt.Errorf("failed to build load enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing load enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]*models.Enrollment)
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(&e.ID, &e.CourseID, &e.StudentID, &e.EnrolledAt, &e.Status); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrollment row")
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		grouped[e.CourseID] = append(grouped[e.CourseID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return grouped, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("name", course.Name).
		Set("category", course.Category).
		Set("teacher_id", course.TeacherID).
		Set("room_id", course.RoomID).
		Set("weekday", int(course.Weekday)).
		Set("start_time", course.StartTime).
		Set("end_time", course.EndTime).
		Set("frequency", course.Frequency).
		Set("week_parity", course.WeekParity).
		Set("start_date", course.StartDate).
		Set("status", course.Status).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCourseTeacherMissing
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and, via cascade, its enrollments and lessons.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}
