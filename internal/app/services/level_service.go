package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

// LevelService defines the interface for level-related operations
type LevelService interface {
	GetAllLevels(ctx context.Context, programID *int64) ([]*models.Level, error)
	CreateLevel(ctx context.Context, level *models.Level) error
	UpdateLevel(ctx context.Context, level *models.Level) error
	DeleteLevel(ctx context.Context, id int64) error
}

type levelRepository interface {
	GetAll(ctx context.Context, programID *int64) ([]*models.Level, error)
	Create(ctx context.Context, level *models.Level) error
	Update(ctx context.Context, level *models.Level) error
	Delete(ctx context.Context, id int64) error
}

type programLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Program, error)
}

// levelServiceImpl implements the LevelService interface
type levelServiceImpl struct {
	levelRepo   levelRepository
	programRepo programLookup
}

// NewLevelService creates a new level service instance
func NewLevelService(levelRepo levelRepository, programRepo programLookup) LevelService {
	return &levelServiceImpl{
		levelRepo:   levelRepo,
		programRepo: programRepo,
	}
}

func validateLevel(level *models.Level) error {
	if level == nil {
		return apperrors.NewValidationError("level is nil")
	}
	if level.ProgramID <= 0 {
		return apperrors.NewValidationError("program ID must be positive")
	}
	if level.Level <= 0 {
		return apperrors.NewValidationError("level number must be positive")
	}
	if level.StudentsCount <= 0 {
		return apperrors.NewValidationError("students count must be positive")
	}
	return nil
}

func (s *levelServiceImpl) checkProgram(ctx context.Context, programID int64) error {
	_, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error checking program: %w", err)
	}
	return nil
}

// GetAllLevels retrieves all levels, optionally scoped to a program
func (s *levelServiceImpl) GetAllLevels(ctx context.Context, programID *int64) ([]*models.Level, error) {
	levels, err := s.levelRepo.GetAll(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving levels: %w", err)
	}
	return levels, nil
}

// CreateLevel creates a new level under an existing program
func (s *levelServiceImpl) CreateLevel(ctx context.Context, level *models.Level) error {
	if err := validateLevel(level); err != nil {
		return err
	}
	if err := s.checkProgram(ctx, level.ProgramID); err != nil {
		return err
	}

	if err := s.levelRepo.Create(ctx, level); err != nil {
		if errors.Is(err, repositories.ErrLevelAlreadyExists) {
			return apperrors.ErrLevelAlreadyExists
		}
		return fmt.Errorf("error creating level: %w", err)
	}
	return nil
}

// UpdateLevel updates an existing level
func (s *levelServiceImpl) UpdateLevel(ctx context.Context, level *models.Level) error {
	if err := validateLevel(level); err != nil {
		return err
	}
	if level.ID <= 0 {
		return apperrors.NewValidationError("invalid level ID")
	}
	if err := s.checkProgram(ctx, level.ProgramID); err != nil {
		return err
	}

	if err := s.levelRepo.Update(ctx, level); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLevelNotFound):
			return apperrors.ErrLevelNotFound
		case errors.Is(err, repositories.ErrLevelAlreadyExists):
			return apperrors.ErrLevelAlreadyExists
		}
		return fmt.Errorf("error updating level: %w", err)
	}
	return nil
}

// DeleteLevel deletes a level by ID
func (s *levelServiceImpl) DeleteLevel(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid level ID")
	}

	if err := s.levelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrLevelNotFound) {
			return apperrors.ErrLevelNotFound
		}
		return fmt.Errorf("error deleting level: %w", err)
	}
	return nil
}
