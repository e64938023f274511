package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context, collegeID *int64) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) error
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

type departmentRepository interface {
	GetAll(ctx context.Context, collegeID *int64) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type collegeLookup interface {
	GetByID(ctx context.Context, id int64) (*models.College, error)
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo departmentRepository
	collegeRepo    collegeLookup
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentRepository, collegeRepo collegeLookup) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		collegeRepo:    collegeRepo,
	}
}

func validateDepartment(department *models.Department) error {
	if department == nil {
		return apperrors.NewValidationError("department is nil")
	}
	if department.CollegeID <= 0 {
		return apperrors.NewValidationError("college ID must be positive")
	}
	if strings.TrimSpace(department.Name) == "" {
		return apperrors.NewValidationError("department name is required")
	}
	return nil
}

// checkCollege verifies the parent college exists.
func (s *departmentServiceImpl) checkCollege(ctx context.Context, collegeID int64) error {
	_, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error checking college: %w", err)
	}
	return nil
}

// GetAllDepartments retrieves departments, optionally restricted to a college
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context, collegeID *int64) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid department ID")
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}
	if err := s.checkCollege(ctx, department.CollegeID); err != nil {
		return err
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if errors.Is(err, repositories.ErrDepartmentAlreadyExists) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// UpdateDepartment updates an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}
	if department.ID <= 0 {
		return apperrors.NewValidationError("invalid department ID")
	}
	if err := s.checkCollege(ctx, department.CollegeID); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDepartmentNotFound):
			return apperrors.ErrDepartmentNotFound
		case errors.Is(err, repositories.ErrDepartmentAlreadyExists):
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	return nil
}

// DeleteDepartment deletes a department by ID
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid department ID")
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}
