package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/pkg/dberrors"
	"github.com/okandemir/melodia/internal/pkg/logger"
)

// Enrollment error types
var (
	// ErrEnrollmentNotFound is returned when an enrollment is not found.
	ErrEnrollmentNotFound = ErrNotFound
	// ErrAlreadyEnrolled is returned when the student already has an enrollment in the course.
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
	// ErrEnrollmentRefMissing is returned when the course or student does not exist.
	ErrEnrollmentRefMissing = errors.New("referenced course or student does not exist")
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("course_id", "student_id", "enrolled_at", "status").
		Values(enrollment.CourseID, enrollment.StudentID, enrollment.EnrolledAt, enrollment.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, ErrEnrollmentRefMissing
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// GetByCourse retrieves all enrollments of a course with student details.
func (r *EnrollmentRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.course_id", "e.student_id", "e.enrolled_at", "e.status",
		"s.id", "s.first_name", "s.last_name", "s.email", "s.phone", "s.birth_date", "s.is_active", "s.created_at").
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.course_id": courseID}).
		OrderBy("e.enrolled_at ASC", "e.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollments by course SQL")
		return nil, fmt.Errorf("failed to build get enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get enrollments by course query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Student: &models.Student{}}
		if err := rows.Scan(
			&e.ID, &e.CourseID, &e.StudentID, &e.EnrolledAt, &e.Status,
			&e.Student.ID, &e.Student.FirstName, &e.Student.LastName, &e.Student.Email,
			&e.Student.Phone, &e.Student.BirthDate, &e.Student.IsActive, &e.Student.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrollment row")
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// UpdateStatus changes an enrollment's status
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update enrollment status SQL")
		return fmt.Errorf("failed to build update enrollment status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing update enrollment status query")
		return fmt.Errorf("error updating enrollment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}
