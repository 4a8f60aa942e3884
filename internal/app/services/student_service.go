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

// StudentService defines the interface for student management
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent updates an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	if student.ID <= 0 {
		return apperrors.ErrStudentNotFound
	}

	err := s.studentRepo.Update(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent deletes a student by ID. Students with generated lessons
// cannot be removed; deactivate them instead.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}

	err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		if errors.Is(err, repositories.ErrStudentHasLessons) {
			return apperrors.ErrStudentHasLessons
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
