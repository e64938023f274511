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

// College error types
var (
	ErrCollegeNotFound      = errors.New("college not found")
	ErrCollegeAlreadyExists = errors.New("college with this name or code already exists")
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// GetAll retrieves all colleges
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	query := `
		SELECT id, name, code
		FROM colleges
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.ID, &college.Name, &college.Code); err != nil {
			return nil, err
		}
		colleges = append(colleges, &college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := `
		SELECT id, name, code
		FROM colleges
		WHERE id = $1
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, id).Scan(&college.ID, &college.Name, &college.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// Create inserts a new college. The duplicate check and the insert run in
// one transaction.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM colleges WHERE name = $1 OR code = $2)`,
			college.Name, college.Code).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking college existence: %w", err)
		}
		if exists {
			return ErrCollegeAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO colleges (name, code)
			VALUES ($1, $2)
			RETURNING id`,
			college.Name, college.Code).Scan(&college.ID)
	})
}

// Update updates an existing college. The duplicate check excludes the row
// being updated.
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM colleges WHERE (name = $1 OR code = $2) AND id != $3)`,
			college.Name, college.Code, college.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking college uniqueness: %w", err)
		}
		if exists {
			return ErrCollegeAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE colleges SET name = $1, code = $2 WHERE id = $3`,
			college.Name, college.Code, college.ID)
		if err != nil {
			return fmt.Errorf("error updating college: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCollegeNotFound
		}
		return nil
	})
}

// Delete deletes a college by ID
func (r *CollegeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCollegeNotFound
	}
	return nil
}
