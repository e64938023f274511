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

// ProgramService defines the interface for program-related operations
type ProgramService interface {
	GetAllPrograms(ctx context.Context) ([]*models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) error
	UpdateProgram(ctx context.Context, program *models.Program) error
	DeleteProgram(ctx context.Context, id int64) error
}

type programRepository interface {
	GetAll(ctx context.Context) ([]*models.Program, error)
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
}

type departmentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// programServiceImpl implements the ProgramService interface
type programServiceImpl struct {
	programRepo    programRepository
	departmentRepo departmentLookup
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo programRepository, departmentRepo departmentLookup) ProgramService {
	return &programServiceImpl{
		programRepo:    programRepo,
		departmentRepo: departmentRepo,
	}
}

func validateProgram(program *models.Program) error {
	if program == nil {
		return apperrors.NewValidationError("program is nil")
	}
	if program.DepartmentID <= 0 {
		return apperrors.NewValidationError("department ID must be positive")
	}
	if strings.TrimSpace(program.Name) == "" {
		return apperrors.NewValidationError("program name is required")
	}
	return nil
}

func (s *programServiceImpl) checkDepartment(ctx context.Context, departmentID int64) error {
	_, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}
	return nil
}

// GetAllPrograms retrieves all programs
func (s *programServiceImpl) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// CreateProgram creates a new program
func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	if err := s.checkDepartment(ctx, program.DepartmentID); err != nil {
		return err
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		if errors.Is(err, repositories.ErrProgramAlreadyExists) {
			return apperrors.ErrProgramAlreadyExists
		}
		return fmt.Errorf("error creating program: %w", err)
	}
	return nil
}

// UpdateProgram updates an existing program
func (s *programServiceImpl) UpdateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}
	if program.ID <= 0 {
		return apperrors.NewValidationError("invalid program ID")
	}
	if err := s.checkDepartment(ctx, program.DepartmentID); err != nil {
		return err
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProgramNotFound):
			return apperrors.ErrProgramNotFound
		case errors.Is(err, repositories.ErrProgramAlreadyExists):
			return apperrors.ErrProgramAlreadyExists
		}
		return fmt.Errorf("error updating program: %w", err)
	}
	return nil
}

// DeleteProgram deletes a program by ID
func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid program ID")
	}

	if err := s.programRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error deleting program: %w", err)
	}
	return nil
}
