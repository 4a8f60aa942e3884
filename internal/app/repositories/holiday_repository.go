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
	"github.com/okandemir/melodia/internal/pkg/logger"
)

// Holiday error types
var (
	// ErrHolidayNotFound is returned when a holiday is not found.
	ErrHolidayNotFound = ErrNotFound
)

// HolidayRepository handles holiday database operations
type HolidayRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHolidayRepository creates a new HolidayRepository
func NewHolidayRepository(db *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new holiday
func (r *HolidayRepository) Create(ctx context.Context, holiday *models.Holiday) (int64, error) {
	sql, args, err := r.sb.Insert("holidays").
		Columns("name", "start_date", "end_date").
		Values(holiday.Name, holiday.StartDate, holiday.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create holiday SQL")
		return 0, fmt.Errorf("failed to build create holiday query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create holiday query")
		return 0, fmt.Errorf("error creating holiday: %w", err)
	}

	return id, nil
}

// GetByID retrieves a holiday by ID
func (r *HolidayRepository) GetByID(ctx context.Context, id int64) (*models.Holiday, error) {
	sql, args, err := r.sb.Select("id", "name", "start_date", "end_date").
		From("holidays").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get holiday by ID SQL")
		return nil, fmt.Errorf("failed to build get holiday query: %w", err)
	}

	holiday := &models.Holiday{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&holiday.ID, &holiday.Name, &holiday.StartDate, &holiday.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHolidayNotFound
		}
		logger.Error().Err(err).Int64("holidayID", id).Msg("Error scanning holiday row")
		return nil, fmt.Errorf("error getting holiday by ID: %w", err)
	}

	return holiday, nil
}

// GetAll retrieves all holidays ordered by start date
func (r *HolidayRepository) GetAll(ctx context.Context) ([]*models.Holiday, error) {
	return r.list(ctx, nil)
}

// GetOverlapping retrieves holidays whose interval overlaps [from, to].
func (r *HolidayRepository) GetOverlapping(ctx context.Context, from, to time.Time) ([]*models.Holiday, error) {
	return r.list(ctx, squirrel.And{
		squirrel.LtOrEq{"start_date": to},
		squirrel.GtOrEq{"end_date": from},
	})
}

func (r *HolidayRepository) list(ctx context.Context, where interface{}) ([]*models.Holiday, error) {
	builder := r.sb.Select("id", "name", "start_date", "end_date").
		From("holidays").
		OrderBy("start_date ASC")
	if where != nil {
		builder = builder.Where(where)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list holidays SQL")
		return nil, fmt.Errorf("failed to build list holidays query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list holidays query")
		return nil, fmt.Errorf("error querying holidays: %w", err)
	}
	defer rows.Close()

	holidays := []*models.Holiday{}
	for rows.Next() {
		holiday := &models.Holiday{}
		if err := rows.Scan(&holiday.ID, &holiday.Name, &holiday.StartDate, &holiday.EndDate); err != nil {
			logger.Error().Err(err).Msg("Error scanning holiday row")
			return nil, fmt.Errorf("error scanning holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", err)
	}

	return holidays, nil
}

// Update updates an existing holiday
func (r *HolidayRepository) Update(ctx context.Context, holiday *models.Holiday) error {
	sql, args, err := r.sb.Update("holidays").
		Set("name", holiday.Name).
		Set("start_date", holiday.StartDate).
		Set("end_date", holiday.EndDate).
		Where(squirrel.Eq{"id": holiday.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update holiday SQL")
		return fmt.Errorf("failed to build update holiday query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("holidayID", holiday.ID).Msg("Error executing update holiday query")
		return fmt.Errorf("error updating holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}

	return nil
}

// Delete removes a holiday
func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete holiday SQL")
		return fmt.Errorf("failed to build delete holiday query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("holidayID", id).Msg("Error executing delete holiday query")
		return fmt.Errorf("error deleting holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}

	return nil
}
