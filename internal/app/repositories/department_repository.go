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

// Department error types
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists in the college")
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAll retrieves all departments joined with their college name. When
// collegeID is non-nil the list is restricted to that college.
func (r *DepartmentRepository) GetAll(ctx context.Context, collegeID *int64) ([]*models.Department, error) {
	query := `
		SELECT d.id, d.college_id, d.name, c.name AS college_name
		FROM departments d
		JOIN colleges c ON d.college_id = c.id
	`
	args := []interface{}{}
	if collegeID != nil {
		query += ` WHERE d.college_id = $1`
		args = append(args, *collegeID)
	}
	query += ` ORDER BY d.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.CollegeID,
			&department.Name,
			&department.CollegeName,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT d.id, d.college_id, d.name, c.name AS college_name
		FROM departments d
		JOIN colleges c ON d.college_id = c.id
		WHERE d.id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.CollegeID,
		&department.Name,
		&department.CollegeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// Create inserts a new department after a same-transaction duplicate check
// on (name, college_id).
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1 AND college_id = $2)`,
			department.Name, department.CollegeID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking department existence: %w", err)
		}
		if exists {
			return ErrDepartmentAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO departments (name, college_id)
			VALUES ($1, $2)
			RETURNING id`,
			department.Name, department.CollegeID).Scan(&department.ID)
	})
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1 AND college_id = $2 AND id != $3)`,
			department.Name, department.CollegeID, department.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking department uniqueness: %w", err)
		}
		if exists {
			return ErrDepartmentAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE departments SET name = $1, college_id = $2 WHERE id = $3`,
			department.Name, department.CollegeID, department.ID)
		if err != nil {
			return fmt.Errorf("error updating department: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrDepartmentNotFound
		}
		return nil
	})
}

// Delete deletes a department by ID
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}
