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

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	GetCollegeByID(ctx context.Context, id int64) (*models.College, error)
	CreateCollege(ctx context.Context, college *models.College) error
	UpdateCollege(ctx context.Context, college *models.College) error
	DeleteCollege(ctx context.Context, id int64) error
}

type collegeRepository interface {
	GetAll(ctx context.Context) ([]*models.College, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	Create(ctx context.Context, college *models.College) error
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id int64) error
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo collegeRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo collegeRepository) CollegeService {
	return &collegeServiceImpl{collegeRepo: collegeRepo}
}

// validateCollege validates college data before database operations
func validateCollege(college *models.College) error {
	if college == nil {
		return apperrors.NewValidationError("college is nil")
	}
	if strings.TrimSpace(college.Name) == "" {
		return apperrors.NewValidationError("college name is required")
	}
	if strings.TrimSpace(college.Code) == "" {
		return apperrors.NewValidationError("college code is required")
	}
	return nil
}

// GetAllColleges retrieves all colleges
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// GetCollegeByID retrieves a college by ID
func (s *collegeServiceImpl) GetCollegeByID(ctx context.Context, id int64) (*models.College, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid college ID")
	}

	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return college, nil
}

// CreateCollege creates a new college
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, college *models.College) error {
	if err := validateCollege(college); err != nil {
		return err
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if errors.Is(err, repositories.ErrCollegeAlreadyExists) {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}
	return nil
}

// UpdateCollege updates an existing college
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, college *models.College) error {
	if err := validateCollege(college); err != nil {
		return err
	}
	if college.ID <= 0 {
		return apperrors.NewValidationError("invalid college ID")
	}

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCollegeNotFound):
			return apperrors.ErrCollegeNotFound
		case errors.Is(err, repositories.ErrCollegeAlreadyExists):
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error updating college: %w", err)
	}
	return nil
}

// DeleteCollege deletes a college by ID
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid college ID")
	}

	if err := s.collegeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCollegeNotFound) {
			return apperrors.ErrCollegeNotFound
		}
		return fmt.Errorf("error deleting college: %w", err)
	}
	return nil
}
