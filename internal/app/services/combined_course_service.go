package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/helpers"
)

// CombinedCourseService defines the interface for combined course
// operations, including the offerings reconciliation.
type CombinedCourseService interface {
	GetByID(ctx context.Context, id int64) (*models.CombinedCourse, error)
	List(ctx context.Context, filter repositories.CombinedCourseFilter) ([]*models.CombinedCourse, error)
	Create(ctx context.Context, req *dto.CombinedCourseRequest) (*models.CombinedCourse, error)
	Update(ctx context.Context, id int64, req *dto.CombinedCourseRequest) (*models.CombinedCourse, error)
	Delete(ctx context.Context, id int64) error
}

// combinedCourseRepository is the storage surface the service needs.
type combinedCourseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.CombinedCourse, error)
	List(ctx context.Context, filter repositories.CombinedCourseFilter) ([]*models.CombinedCourse, error)
	BaseOffering(ctx context.Context, combinedCourseID int64) (*models.Offering, error)
	ExplicitOfferings(ctx context.Context, combinedCourseID int64) ([]models.Offering, error)
	Create(ctx context.Context, cc *models.CombinedCourse, pairs []models.Offering) error
	Update(ctx context.Context, cc *models.CombinedCourse, pairs []models.Offering) error
	Delete(ctx context.Context, id int64) error
}

// combinedCourseServiceImpl implements the CombinedCourseService interface
type combinedCourseServiceImpl struct {
	repo combinedCourseRepository
}

// NewCombinedCourseService creates a new combined course service instance
func NewCombinedCourseService(repo combinedCourseRepository) CombinedCourseService {
	return &combinedCourseServiceImpl{repo: repo}
}

// fetchOfferings builds the merged offerings view of a combined course: the
// base pairing resolved through the underlying course's level and program
// comes first, followed by each explicit pairing that does not duplicate
// the base. Callers must not rely on order beyond "base first if present".
func (s *combinedCourseServiceImpl) fetchOfferings(ctx context.Context, combinedCourseID int64) ([]models.Offering, error) {
	base, err := s.repo.BaseOffering(ctx, combinedCourseID)
	if err != nil {
		return nil, err
	}

	explicit, err := s.repo.ExplicitOfferings(ctx, combinedCourseID)
	if err != nil {
		return nil, err
	}

	offerings := make([]models.Offering, 0, len(explicit)+1)
	if base != nil {
		offerings = append(offerings, *base)
	}
	for _, o := range explicit {
		if base != nil && o.Same(*base) {
			continue
		}
		offerings = append(offerings, o)
	}

	return offerings, nil
}

// GetByID retrieves a combined course with its merged offerings
func (s *combinedCourseServiceImpl) GetByID(ctx context.Context, id int64) (*models.CombinedCourse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid combined course ID")
	}

	cc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCombinedCourseNotFound) {
			return nil, apperrors.ErrCombinedCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving combined course: %w", err)
	}

	cc.Offerings, err = s.fetchOfferings(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error resolving offerings: %w", err)
	}

	return cc, nil
}

// List retrieves combined courses matching the filter, each with its merged
// offerings attached.
func (s *combinedCourseServiceImpl) List(ctx context.Context, filter repositories.CombinedCourseFilter) ([]*models.CombinedCourse, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing combined courses: %w", err)
	}

	for _, cc := range courses {
		cc.Offerings, err = s.fetchOfferings(ctx, cc.ID)
		if err != nil {
			return nil, fmt.Errorf("error resolving offerings: %w", err)
		}
	}

	return courses, nil
}

// normalizeRequest validates a write payload and returns the normalized
// master fields and offering pairs.
func normalizeRequest(req *dto.CombinedCourseRequest) (code, name string, pairs []models.Offering, err error) {
	code = helpers.NormalizeCourseCode(req.CourseCode)
	name = helpers.NormalizeCourseName(req.CourseName)

	if code == "" || name == "" || len(req.Offerings) == 0 {
		return "", "", nil, apperrors.NewValidationError("code, name and offerings are required")
	}

	for _, o := range req.Offerings {
		if o.ProgramID <= 0 || o.LevelID <= 0 {
			return "", "", nil, apperrors.NewValidationError("offerings must have valid program and level IDs")
		}
		pairs = append(pairs, models.Offering{ProgramID: o.ProgramID, LevelID: o.LevelID})
	}

	return code, name, pairs, nil
}

// Create creates a combined course and its explicit offerings
func (s *combinedCourseServiceImpl) Create(ctx context.Context, req *dto.CombinedCourseRequest) (*models.CombinedCourse, error) {
	code, name, pairs, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	cc := &models.CombinedCourse{CourseCode: code, CourseName: name}
	if err := s.repo.Create(ctx, cc, pairs); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBaseCourseMissing):
			return nil, apperrors.ErrBaseCourseMissing
		case errors.Is(err, repositories.ErrCombinedCourseExists):
			return nil, apperrors.ErrCombinedCourseExists
		}
		return nil, fmt.Errorf("error creating combined course: %w", err)
	}

	cc.Offerings, err = s.fetchOfferings(ctx, cc.ID)
	if err != nil {
		return nil, fmt.Errorf("error resolving offerings: %w", err)
	}

	return cc, nil
}

// Update updates the master row and replaces the full explicit offerings
// set. Repeating the same payload yields the same final state.
func (s *combinedCourseServiceImpl) Update(ctx context.Context, id int64, req *dto.CombinedCourseRequest) (*models.CombinedCourse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid combined course ID")
	}

	code, name, pairs, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	cc := &models.CombinedCourse{ID: id, CourseCode: code, CourseName: name}
	if err := s.repo.Update(ctx, cc, pairs); err != nil {
		if errors.Is(err, repositories.ErrCombinedCourseNotFound) {
			return nil, apperrors.ErrCombinedCourseNotFound
		}
		return nil, fmt.Errorf("error updating combined course: %w", err)
	}

	cc.Offerings, err = s.fetchOfferings(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error resolving offerings: %w", err)
	}

	return cc, nil
}

// Delete removes a combined course together with its explicit offerings
func (s *combinedCourseServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid combined course ID")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCombinedCourseNotFound) {
			return apperrors.ErrCombinedCourseNotFound
		}
		return fmt.Errorf("error deleting combined course: %w", err)
	}
	return nil
}

// ParseFilter builds a listing filter from raw query values. Empty strings
// leave the corresponding field unset.
func ParseFilter(search, programID, levelID string) (repositories.CombinedCourseFilter, error) {
	filter := repositories.CombinedCourseFilter{Search: strings.TrimSpace(search)}

	if programID != "" {
		id, err := parsePositiveID(programID)
		if err != nil {
			return filter, apperrors.NewValidationError("program_id must be a positive number")
		}
		filter.ProgramID = &id
	}
	if levelID != "" {
		id, err := parsePositiveID(levelID)
		if err != nil {
			return filter, apperrors.NewValidationError("level_id must be a positive number")
		}
		filter.LevelID = &id
	}

	return filter, nil
}
