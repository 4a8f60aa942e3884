package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/helpers"
)

// LessonService defines the interface for listing lessons and updating their
// lifecycle status. Lessons are created exclusively by the generation engine.
type LessonService interface {
	ListLessons(ctx context.Context, query *dto.LessonListQuery) ([]*models.Lesson, error)
	UpdateLessonStatus(ctx context.Context, id int64, status models.LessonStatus) error
}

// lessonServiceImpl implements the LessonService interface
type lessonServiceImpl struct {
	lessonRepo *repositories.LessonRepository
}

// NewLessonService creates a new lesson service instance
func NewLessonService(lessonRepo *repositories.LessonRepository) LessonService {
	return &lessonServiceImpl{
		lessonRepo: lessonRepo,
	}
}

// ListLessons lists lessons matching the optional course, student and date
// filters. An inverted date range is rejected.
func (s *lessonServiceImpl) ListLessons(ctx context.Context, query *dto.LessonListQuery) ([]*models.Lesson, error) {
	var from, to time.Time
	var err error

	if query.From != "" {
		if from, err = helpers.ParseDate(query.From); err != nil {
			return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
	}
	if query.To != "" {
		if to, err = helpers.ParseDate(query.To); err != nil {
			return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	lessons, err := s.lessonRepo.List(ctx, query.CourseID, query.StudentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lessons: %w", err)
	}
	return lessons, nil
}

// UpdateLessonStatus transitions a lesson occurrence to a new status
func (s *lessonServiceImpl) UpdateLessonStatus(ctx context.Context, id int64, status models.LessonStatus) error {
	if id <= 0 {
		return apperrors.ErrLessonNotFound
	}

	err := s.lessonRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrLessonNotFound
		}
		return fmt.Errorf("error updating lesson status: %w", err)
	}
	return nil
}
