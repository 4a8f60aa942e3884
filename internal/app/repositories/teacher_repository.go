package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/pkg/dberrors"
	"github.com/okandemir/melodia/internal/pkg/logger"
)

// Teacher error types
var (
	// ErrTeacherNotFound is returned when a teacher is not found.
	ErrTeacherNotFound = ErrNotFound
	// ErrTeacherEmailExists is returned when a teacher with the same email exists.
	ErrTeacherEmailExists = errors.New("teacher with this email already exists")
	// ErrTeacherHasCourses is returned when deleting a teacher who still teaches courses.
	ErrTeacherHasCourses = errors.New("teacher has courses and cannot be deleted")
)

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	sql, args, err := r.sb.Insert("teachers").
		Columns("user_id", "first_name", "last_name", "email", "phone", "specialty").
		Values(teacher.UserID, teacher.FirstName, teacher.LastName, teacher.Email, teacher.Phone, teacher.Specialty).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher SQL")
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrTeacherEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}

	return id, nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "user_id", "first_name", "last_name", "email", "phone", "specialty").
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get teacher by ID SQL")
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher := &models.Teacher{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&teacher.ID, &teacher.UserID, &teacher.FirstName, &teacher.LastName,
		&teacher.Email, &teacher.Phone, &teacher.Specialty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teachers ordered by name
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "user_id", "first_name", "last_name", "email", "phone", "specialty").
		From("teachers").
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all teachers SQL")
		return nil, fmt.Errorf("failed to build get all teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher := &models.Teacher{}
		if err := rows.Scan(
			&teacher.ID, &teacher.UserID, &teacher.FirstName, &teacher.LastName,
			&teacher.Email, &teacher.Phone, &teacher.Specialty,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning teacher row")
			return nil, fmt.Errorf("error scanning teacher: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// Update updates an existing teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		Set("first_name", teacher.FirstName).
		Set("last_name", teacher.LastName).
		Set("email", teacher.Email).
		Set("phone", teacher.Phone).
		Set("specialty", teacher.Specialty).
		Where(squirrel.Eq{"id": teacher.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update teacher SQL")
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrTeacherEmailExists
		}
		logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete teacher SQL")
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrTeacherHasCourses
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	return nil
}
