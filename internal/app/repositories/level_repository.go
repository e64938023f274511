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

// Level error types
var (
	ErrLevelNotFound      = errors.New("level not found")
	ErrLevelAlreadyExists = errors.New("level already exists for this program")
)

// LevelRepository handles database operations for levels
type LevelRepository struct {
	db *pgxpool.Pool
}

// NewLevelRepository creates a new level repository
func NewLevelRepository(db *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{db: db}
}

// GetAll retrieves all levels joined with their program name, ordered by
// program then level. When programID is non-nil only that program's levels
// are returned.
func (r *LevelRepository) GetAll(ctx context.Context, programID *int64) ([]*models.Level, error) {
	query := `
		SELECT l.id, l.program_id, l.level, l.students_count, p.name AS program_name
		FROM levels l
		JOIN programs p ON l.program_id = p.id
	`
	args := []interface{}{}
	if programID != nil {
		query += ` WHERE l.program_id = $1`
		args = append(args, *programID)
	}
	query += ` ORDER BY p.name, l.level`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []*models.Level
	for rows.Next() {
		var level models.Level
		if err := rows.Scan(
			&level.ID,
			&level.ProgramID,
			&level.Level,
			&level.StudentsCount,
			&level.ProgramName,
		); err != nil {
			return nil, err
		}
		levels = append(levels, &level)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return levels, nil
}

// GetByID retrieves a level by ID
func (r *LevelRepository) GetByID(ctx context.Context, id int64) (*models.Level, error) {
	query := `
		SELECT l.id, l.program_id, l.level, l.students_count, p.name AS program_name
		FROM levels l
		JOIN programs p ON l.program_id = p.id
		WHERE l.id = $1
	`

	var level models.Level
	err := r.db.QueryRow(ctx, query, id).Scan(
		&level.ID,
		&level.ProgramID,
		&level.Level,
		&level.StudentsCount,
		&level.ProgramName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLevelNotFound
		}
		return nil, fmt.Errorf("error retrieving level: %w", err)
	}

	return &level, nil
}

// Create inserts a new level after a same-transaction duplicate check on
// (program_id, level).
func (r *LevelRepository) Create(ctx context.Context, level *models.Level) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM levels WHERE program_id = $1 AND level = $2)`,
			level.ProgramID, level.Level).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking level existence: %w", err)
		}
		if exists {
			return ErrLevelAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO levels (program_id, level, students_count)
			VALUES ($1, $2, $3)
			RETURNING id`,
			level.ProgramID, level.Level, level.StudentsCount).Scan(&level.ID)
	})
}

// Update updates an existing level
func (r *LevelRepository) Update(ctx context.Context, level *models.Level) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM levels WHERE program_id = $1 AND level = $2 AND id != $3)`,
			level.ProgramID, level.Level, level.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking level uniqueness: %w", err)
		}
		if exists {
			return ErrLevelAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE levels SET program_id = $1, level = $2, students_count = $3 WHERE id = $4`,
			level.ProgramID, level.Level, level.StudentsCount, level.ID)
		if err != nil {
			return fmt.Errorf("error updating level: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrLevelNotFound
		}
		return nil
	})
}

// Delete deletes a level by ID
func (r *LevelRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM levels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting level: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrLevelNotFound
	}
	return nil
}
