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

// Program error types
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrProgramAlreadyExists = errors.New("program with this name already exists in the department")
)

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// GetAll retrieves all programs joined with their department name
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	query := `
		SELECT p.id, p.department_id, p.name, COALESCE(d.name, 'Unknown') AS department_name
		FROM programs p
		LEFT JOIN departments d ON p.department_id = d.id
		ORDER BY p.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.DepartmentID,
			&program.Name,
			&program.DepartmentName,
		); err != nil {
			return nil, err
		}
		programs = append(programs, &program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	query := `
		SELECT p.id, p.department_id, p.name, COALESCE(d.name, 'Unknown') AS department_name
		FROM programs p
		LEFT JOIN departments d ON p.department_id = d.id
		WHERE p.id = $1
	`

	var program models.Program
	err := r.db.QueryRow(ctx, query, id).Scan(
		&program.ID,
		&program.DepartmentID,
		&program.Name,
		&program.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return &program, nil
}

// Create inserts a new program after a same-transaction duplicate check on
// (department_id, name).
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM programs WHERE department_id = $1 AND name = $2)`,
			program.DepartmentID, program.Name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking program existence: %w", err)
		}
		if exists {
			return ErrProgramAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO programs (department_id, name)
			VALUES ($1, $2)
			RETURNING id`,
			program.DepartmentID, program.Name).Scan(&program.ID)
	})
}

// Update updates an existing program
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM programs WHERE department_id = $1 AND name = $2 AND id != $3)`,
			program.DepartmentID, program.Name, program.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking program uniqueness: %w", err)
		}
		if exists {
			return ErrProgramAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE programs SET department_id = $1, name = $2 WHERE id = $3`,
			program.DepartmentID, program.Name, program.ID)
		if err != nil {
			return fmt.Errorf("error updating program: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrProgramNotFound
		}
		return nil
	})
}

// Delete deletes a program by ID
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}
