package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// HolidayService defines the interface for holiday calendar management
type HolidayService interface {
	CreateHoliday(ctx context.Context, holiday *models.Holiday) (int64, error)
	GetHolidayByID(ctx context.Context, id int64) (*models.Holiday, error)
	GetAllHolidays(ctx context.Context) ([]*models.Holiday, error)
	UpdateHoliday(ctx context.Context, holiday *models.Holiday) error
	DeleteHoliday(ctx context.Context, id int64) error
}

// holidayServiceImpl implements the HolidayService interface
type holidayServiceImpl struct {
	holidayRepo *repositories.HolidayRepository
}

// NewHolidayService creates a new holiday service instance
func NewHolidayService(holidayRepo *repositories.HolidayRepository) HolidayService {
	return &holidayServiceImpl{
		holidayRepo: holidayRepo,
	}
}

// validateHoliday normalizes the dates to midnight and checks the interval.
// Single-day holidays (start == end) are valid.
func (s *holidayServiceImpl) validateHoliday(holiday *models.Holiday) error {
	if holiday == nil {
		return fmt.Errorf("%w: holiday is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(holiday.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	holiday.StartDate = schedule.DateOf(holiday.StartDate)
	holiday.EndDate = schedule.DateOf(holiday.EndDate)
	if holiday.EndDate.Before(holiday.StartDate) {
		return apperrors.ErrHolidayRangeInverted
	}
	return nil
}

// CreateHoliday creates a new holiday interval
func (s *holidayServiceImpl) CreateHoliday(ctx context.Context, holiday *models.Holiday) (int64, error) {
	if err := s.validateHoliday(holiday); err != nil {
		return 0, err
	}

	id, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		return 0, fmt.Errorf("error creating holiday: %w", err)
	}
	return id, nil
}

// GetHolidayByID retrieves a holiday by ID
func (s *holidayServiceImpl) GetHolidayByID(ctx context.Context, id int64) (*models.Holiday, error) {
	if id <= 0 {
		return nil, apperrors.ErrHolidayNotFound
	}

	holiday, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("error retrieving holiday: %w", err)
	}
	return holiday, nil
}

// GetAllHolidays retrieves all holidays ordered by start date
func (s *holidayServiceImpl) GetAllHolidays(ctx context.Context) ([]*models.Holiday, error) {
	holidays, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving holidays: %w", err)
	}
	return holidays, nil
}

// UpdateHoliday updates an existing holiday
func (s *holidayServiceImpl) UpdateHoliday(ctx context.Context, holiday *models.Holiday) error {
	if err := s.validateHoliday(holiday); err != nil {
		return err
	}
	if holiday.ID <= 0 {
		return apperrors.ErrHolidayNotFound
	}

	err := s.holidayRepo.Update(ctx, holiday)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrHolidayNotFound
		}
		return fmt.Errorf("error updating holiday: %w", err)
	}
	return nil
}

// DeleteHoliday deletes a holiday by ID
func (s *holidayServiceImpl) DeleteHoliday(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrHolidayNotFound
	}

	err := s.holidayRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrHolidayNotFound
		}
		return fmt.Errorf("error deleting holiday: %w", err)
	}
	return nil
}
