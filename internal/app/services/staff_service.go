package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

// StaffService defines the interface for staff-related operations
type StaffService interface {
	GetAllStaff(ctx context.Context) ([]*models.Staff, error)
	CreateStaff(ctx context.Context, staff *models.Staff) error
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeleteStaff(ctx context.Context, id int64) error
}

type staffRepository interface {
	GetAll(ctx context.Context) ([]*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id int64) error
}

// staffServiceImpl implements the StaffService interface
type staffServiceImpl struct {
	staffRepo      staffRepository
	collegeRepo    collegeLookup
	departmentRepo departmentLookup
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo staffRepository, collegeRepo collegeLookup, departmentRepo departmentLookup) StaffService {
	return &staffServiceImpl{
		staffRepo:      staffRepo,
		collegeRepo:    collegeRepo,
		departmentRepo: departmentRepo,
	}
}

func validateStaff(staff *models.Staff) error {
	if staff == nil {
		return apperrors.NewValidationError("staff is nil")
	}
	if strings.TrimSpace(staff.Name) == "" {
		return apperrors.NewValidationError("staff name is required")
	}
	if _, err := mail.ParseAddress(staff.Email); err != nil {
		return apperrors.NewValidationError("invalid staff email address")
	}
	if strings.TrimSpace(staff.Phone) == "" {
		return apperrors.NewValidationError("staff phone is required")
	}
	if staff.CollegeID <= 0 {
		return apperrors.NewValidationError("college ID must be positive")
	}
	if staff.DepartmentID <= 0 {
		return apperrors.NewValidationError("department ID must be positive")
	}
	if strings.TrimSpace(staff.Position) == "" {
		return apperrors.NewValidationError("staff position is required")
	}
	return nil
}

func (s *staffServiceImpl) checkParents(ctx context.Context, staff *models.Staff) error {
	if _, err := s.collegeRepo.GetByID(ctx, staff.CollegeID); err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error checking college: %w", err)
	}
	department, err := s.departmentRepo.GetByID(ctx, staff.DepartmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}
	if department.CollegeID != staff.CollegeID {
		return apperrors.NewValidationError("department does not belong to the given college")
	}
	return nil
}

// GetAllStaff retrieves all staff members
func (s *staffServiceImpl) GetAllStaff(ctx context.Context) ([]*models.Staff, error) {
	staff, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}
	return staff, nil
}

// CreateStaff creates a new staff member
func (s *staffServiceImpl) CreateStaff(ctx context.Context, staff *models.Staff) error {
	if err := validateStaff(staff); err != nil {
		return err
	}
	if err := s.checkParents(ctx, staff); err != nil {
		return err
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		if errors.Is(err, repositories.ErrStaffAlreadyExists) {
			return apperrors.ErrStaffAlreadyExists
		}
		return fmt.Errorf("error creating staff: %w", err)
	}
	return nil
}

// UpdateStaff updates an existing staff member
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	if err := validateStaff(staff); err != nil {
		return err
	}
	if staff.ID <= 0 {
		return apperrors.NewValidationError("invalid staff ID")
	}
	if err := s.checkParents(ctx, staff); err != nil {
		return err
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStaffNotFound):
			return apperrors.ErrStaffNotFound
		case errors.Is(err, repositories.ErrStaffAlreadyExists):
			return apperrors.ErrStaffAlreadyExists
		}
		return fmt.Errorf("error updating staff: %w", err)
	}
	return nil
}

// DeleteStaff deletes a staff member by ID
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid staff ID")
	}

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStaffNotFound) {
			return apperrors.ErrStaffNotFound
		}
		return fmt.Errorf("error deleting staff: %w", err)
	}
	return nil
}
