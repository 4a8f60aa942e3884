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

// Student error types
var (
	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = ErrNotFound
	// ErrStudentHasLessons is returned when deleting a student with lesson history.
	ErrStudentHasLessons = errors.New("student has lessons and cannot be deleted")
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "email", "phone", "birth_date", "is_active").
		Values(student.FirstName, student.LastName, student.Email, student.Phone, student.BirthDate, student.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "email", "phone", "birth_date", "is_active", "created_at").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.BirthDate, &student.IsActive, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "email", "phone", "birth_date", "is_active", "created_at").
		From("students").
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.Email,
			&student.Phone, &student.BirthDate, &student.IsActive, &student.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("email", student.Email).
		Set("phone", student.Phone).
		Set("birth_date", student.BirthDate).
		Set("is_active", student.IsActive).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrStudentHasLessons
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
