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

// Staff error types
var (
	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffAlreadyExists = errors.New("staff already exists with these details")
)

// StaffRepository handles database operations for staff records
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

// GetAll retrieves all staff joined with college and department names,
// newest first.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	query := `
		SELECT s.id, s.name, s.email, s.phone, s.college_id, s.department_id, s.position,
		       c.name AS college_name, d.name AS department_name
		FROM staffs s
		JOIN colleges c ON s.college_id = c.id
		JOIN departments d ON s.department_id = d.id
		ORDER BY s.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffs []*models.Staff
	for rows.Next() {
		var staff models.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Email,
			&staff.Phone,
			&staff.CollegeID,
			&staff.DepartmentID,
			&staff.Position,
			&staff.CollegeName,
			&staff.DepartmentName,
		); err != nil {
			return nil, err
		}
		staffs = append(staffs, &staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffs, nil
}

// staffMatchClause matches the full identifying tuple of a staff record.
const staffMatchClause = `name = $1 AND email = $2 AND phone = $3
	AND college_id = $4 AND department_id = $5 AND position = $6`

// Create inserts a new staff record after a same-transaction duplicate
// check on the full tuple.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM staffs WHERE `+staffMatchClause+`)`,
			staff.Name, staff.Email, staff.Phone,
			staff.CollegeID, staff.DepartmentID, staff.Position).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking staff existence: %w", err)
		}
		if exists {
			return ErrStaffAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO staffs (name, email, phone, college_id, department_id, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			staff.Name, staff.Email, staff.Phone,
			staff.CollegeID, staff.DepartmentID, staff.Position).Scan(&staff.ID)
	})
}

// Update updates an existing staff record
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM staffs WHERE `+staffMatchClause+` AND id != $7)`,
			staff.Name, staff.Email, staff.Phone,
			staff.CollegeID, staff.DepartmentID, staff.Position, staff.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking staff uniqueness: %w", err)
		}
		if exists {
			return ErrStaffAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE staffs
			SET name = $1, email = $2, phone = $3, college_id = $4, department_id = $5, position = $6
			WHERE id = $7`,
			staff.Name, staff.Email, staff.Phone,
			staff.CollegeID, staff.DepartmentID, staff.Position, staff.ID)
		if err != nil {
			return fmt.Errorf("error updating staff: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrStaffNotFound
		}
		return nil
	})
}

// Delete deletes a staff record by ID
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staffs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}
