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

// VenueService defines the interface for venue-related operations
type VenueService interface {
	GetAllVenues(ctx context.Context) ([]*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type venueRepository interface {
	GetAll(ctx context.Context) ([]*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int64) error
}

// venueServiceImpl implements the VenueService interface
type venueServiceImpl struct {
	venueRepo venueRepository
}

// NewVenueService creates a new venue service instance
func NewVenueService(venueRepo venueRepository) VenueService {
	return &venueServiceImpl{venueRepo: venueRepo}
}

func validateVenue(venue *models.Venue) error {
	if venue == nil {
		return apperrors.NewValidationError("venue is nil")
	}
	if strings.TrimSpace(venue.Name) == "" {
		return apperrors.NewValidationError("venue name is required")
	}
	if strings.TrimSpace(venue.Code) == "" {
		return apperrors.NewValidationError("venue code is required")
	}
	if venue.Capacity <= 0 {
		return apperrors.NewValidationError("venue capacity must be positive")
	}
	if venue.Radius != nil && *venue.Radius < 0 {
		return apperrors.NewValidationError("venue radius cannot be negative")
	}
	return nil
}

// GetAllVenues retrieves all venues
func (s *venueServiceImpl) GetAllVenues(ctx context.Context) ([]*models.Venue, error) {
	venues, err := s.venueRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving venues: %w", err)
	}
	return venues, nil
}

// CreateVenue creates a new venue
func (s *venueServiceImpl) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := validateVenue(venue); err != nil {
		return err
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		if errors.Is(err, repositories.ErrVenueAlreadyExists) {
			return apperrors.ErrVenueAlreadyExists
		}
		return fmt.Errorf("error creating venue: %w", err)
	}
	return nil
}

// UpdateVenue updates an existing venue
func (s *venueServiceImpl) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	if err := validateVenue(venue); err != nil {
		return err
	}
	if venue.ID <= 0 {
		return apperrors.NewValidationError("invalid venue ID")
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		switch {
		case errors.Is(err, repositories.ErrVenueNotFound):
			return apperrors.ErrVenueNotFound
		case errors.Is(err, repositories.ErrVenueAlreadyExists):
			return apperrors.ErrVenueAlreadyExists
		}
		return fmt.Errorf("error updating venue: %w", err)
	}
	return nil
}

// DeleteVenue deletes a venue by ID
func (s *venueServiceImpl) DeleteVenue(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid venue ID")
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrVenueNotFound) {
			return apperrors.ErrVenueNotFound
		}
		return fmt.Errorf("error deleting venue: %w", err)
	}
	return nil
}
