package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/db"
)

// Venue error types
var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrVenueAlreadyExists = errors.New("venue with this name and code already exists")
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *pgxpool.Pool
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetAll retrieves all venues, newest first
func (r *VenueRepository) GetAll(ctx context.Context) ([]*models.Venue, error) {
	query := `
		SELECT id, name, code, capacity, latitude, longitude, radius, COALESCE(venue_type, '')
		FROM venues
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		var venue models.Venue
		if err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Code,
			&venue.Capacity,
			&venue.Latitude,
			&venue.Longitude,
			&venue.Radius,
			&venue.VenueType,
		); err != nil {
			return nil, err
		}
		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return venues, nil
}

// Create inserts a new venue after a same-transaction duplicate check on
// (name, code).
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM venues WHERE name = $1 AND code = $2)`,
			venue.Name, venue.Code).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking venue existence: %w", err)
		}
		if exists {
			return ErrVenueAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO venues (name, code, capacity, latitude, longitude, radius, venue_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			venue.Name, venue.Code, venue.Capacity,
			venue.Latitude, venue.Longitude, venue.Radius, venue.VenueType,
		).Scan(&venue.ID)
	})
}

// Update updates an existing venue
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM venues WHERE name = $1 AND code = $2 AND id != $3)`,
			venue.Name, venue.Code, venue.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking venue uniqueness: %w", err)
		}
		if exists {
			return ErrVenueAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE venues
			SET name = $1, code = $2, capacity = $3, latitude = $4, longitude = $5,
			    radius = $6, venue_type = $7
			WHERE id = $8`,
			venue.Name, venue.Code, venue.Capacity,
			venue.Latitude, venue.Longitude, venue.Radius, venue.VenueType, venue.ID)
		if err != nil {
			return fmt.Errorf("error updating venue: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
}

// Delete deletes a venue by ID
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting venue: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrVenueNotFound
	}
	return nil
}
