package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
)

// TeacherService defines the interface for instructor management
type TeacherService interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) error
	DeleteTeacher(ctx context.Context, id int64) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
	}
}

// validateTeacher validates teacher data before database operations
func (s *teacherServiceImpl) validateTeacher(teacher *models.Teacher) error {
	if teacher == nil {
		return fmt.Errorf("%w: teacher is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(teacher.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(teacher.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(teacher.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateTeacher creates a new teacher
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	if err := s.validateTeacher(teacher); err != nil {
		return 0, err
	}

	id, err := s.teacherRepo.Create(ctx, teacher)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherEmailExists) {
			return 0, apperrors.NewConflictError("a teacher with this email already exists")
		}
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}
	return id, nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, apperrors.ErrTeacherNotFound
	}

	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// GetAllTeachers retrieves all teachers
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// UpdateTeacher updates an existing teacher
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if err := s.validateTeacher(teacher); err != nil {
		return err
	}
	if teacher.ID <= 0 {
		return apperrors.ErrTeacherNotFound
	}

	err := s.teacherRepo.Update(ctx, teacher)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		if errors.Is(err, repositories.ErrTeacherEmailExists) {
			return apperrors.NewConflictError("a teacher with this email already exists")
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}
	return nil
}

// DeleteTeacher deletes a teacher by ID. Teachers still assigned to courses
// cannot be removed.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrTeacherNotFound
	}

	err := s.teacherRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		if errors.Is(err, repositories.ErrTeacherHasCourses) {
			return apperrors.ErrTeacherHasCourses
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	return nil
}
