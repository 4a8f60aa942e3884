package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/pkg/logger"
)

// Lesson error types
var (
	// ErrLessonNotFound is returned when a lesson is not found.
	ErrLessonNotFound = ErrNotFound
)

const lessonColumns = "id, course_id, student_id, lesson_date, start_time, end_time, status, created_at"

// LessonRepository handles lesson database operations
type LessonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateBatch inserts the given lessons in one transaction and fills in their
// generated IDs. The slice is the engine's "to create" output; a partial
// insert would break idempotence, hence the transaction.
func (r *LessonRepository) CreateBatch(ctx context.Context, lessons []*models.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error starting lesson batch transaction")
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, lesson := range lessons {
		sql, args, err := r.sb.Insert("lessons").
			Columns("course_id", "student_id", "lesson_date", "start_time", "end_time", "status").
			Values(lesson.CourseID, lesson.StudentID, lesson.LessonDate, lesson.StartTime, lesson.EndTime, lesson.Status).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create lesson SQL")
			return fmt.Errorf("failed to build create lesson query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&lesson.ID, &lesson.CreatedAt); err != nil {
			logger.Error().Err(err).Int64("courseID", lesson.CourseID).Msg("Error inserting lesson")
			return fmt.Errorf("error creating lesson: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error().Err(err).Msg("Error committing lesson batch")
		return fmt.Errorf("error committing lesson batch: %w", err)
	}

	return nil
}

// GetByCourse retrieves all lessons of one course, optionally bounded by an
// inclusive date range. Zero range bounds are ignored.
func (r *LessonRepository) GetByCourse(ctx context.Context, courseID int64, from, to time.Time) ([]*models.Lesson, error) {
	where := squirrel.And{squirrel.Eq{"course_id": courseID}}
	if !from.IsZero() {
		where = append(where, squirrel.GtOrEq{"lesson_date": from})
	}
	if !to.IsZero() {
		where = append(where, squirrel.LtOrEq{"lesson_date": to})
	}
	return r.list(ctx, where)
}

// GetByCourseWithStudents retrieves all lessons of a course with the assigned
// student attached. Used for calendar export where names matter.
func (r *LessonRepository) GetByCourseWithStudents(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	sql, args, err := r.sb.Select(
		"l.id", "l.course_id", "l.student_id", "l.lesson_date", "l.start_time", "l.end_time", "l.status", "l.created_at",
		"s.first_name", "s.last_name").
		From("lessons l").
		LeftJoin("students s ON s.id = l.student_id").
		Where(squirrel.Eq{"l.course_id": courseID}).
		OrderBy("l.lesson_date ASC", "l.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building lessons with students SQL")
		return nil, fmt.Errorf("failed to build lessons with students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing lessons with students query")
		return nil, fmt.Errorf("error querying lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*models.Lesson{}
	for rows.Next() {
		lesson := &models.Lesson{}
		var firstName, lastName *string
		if err := rows.Scan(
			&lesson.ID, &lesson.CourseID, &lesson.StudentID, &lesson.LessonDate,
			&lesson.StartTime, &lesson.EndTime, &lesson.Status, &lesson.CreatedAt,
			&firstName, &lastName,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning lesson row")
			return nil, fmt.Errorf("error scanning lesson: %w", err)
		}
		if lesson.StudentID != nil && firstName != nil && lastName != nil {
			lesson.Student = &models.Student{ID: *lesson.StudentID, FirstName: *firstName, LastName: *lastName}
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	return lessons, nil
}

// List retrieves lessons matching the given optional filters.
func (r *LessonRepository) List(ctx context.Context, courseID, studentID int64, from, to time.Time) ([]*models.Lesson, error) {
	where := squirrel.And{}
	if courseID > 0 {
		where = append(where, squirrel.Eq{"course_id": courseID})
	}
	if studentID > 0 {
		where = append(where, squirrel.Eq{"student_id": studentID})
	}
	if !from.IsZero() {
		where = append(where, squirrel.GtOrEq{"lesson_date": from})
	}
	if !to.IsZero() {
		where = append(where, squirrel.LtOrEq{"lesson_date": to})
	}
	return r.list(ctx, where)
}

func (r *LessonRepository) list(ctx context.Context, where squirrel.And) ([]*models.Lesson, error) {
	builder := r.sb.Select(lessonColumns).From("lessons").OrderBy("lesson_date ASC", "id ASC")
	if len(where) > 0 {
		builder = builder.Where(where)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list lessons SQL")
		return nil, fmt.Errorf("failed to build list lessons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list lessons query")
		return nil, fmt.Errorf("error querying lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*models.Lesson{}
	for rows.Next() {
		lesson := &models.Lesson{}
		if err := rows.Scan(
			&lesson.ID, &lesson.CourseID, &lesson.StudentID, &lesson.LessonDate,
			&lesson.StartTime, &lesson.EndTime, &lesson.Status, &lesson.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning lesson row")
			return nil, fmt.Errorf("error scanning lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	return lessons, nil
}

// UpdateStatus changes a lesson's status
func (r *LessonRepository) UpdateStatus(ctx context.Context, id int64, status models.LessonStatus) error {
	sql, args, err := r.sb.Update("lessons").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update lesson status SQL")
		return fmt.Errorf("failed to build update lesson status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lessonID", id).Msg("Error executing update lesson status query")
		return fmt.Errorf("error updating lesson status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLessonNotFound
	}

	return nil
}
