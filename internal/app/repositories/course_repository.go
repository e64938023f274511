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

// Course error types
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseListQuery = `
	SELECT c.id, c.course_code, c.course_name, c.level_id, c.credit_unit,
	       c.created_at, c.updated_at,
	       COALESCE(l.level, 0), COALESCE(l.program_id, 0), COALESCE(p.name, '')
	FROM courses c
	LEFT JOIN levels l ON c.level_id = l.id
	LEFT JOIN programs p ON l.program_id = p.id
`

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseCode,
			&course.CourseName,
			&course.LevelID,
			&course.CreditUnit,
			&course.CreatedAt,
			&course.UpdatedAt,
			&course.Level,
			&course.ProgramID,
			&course.ProgramName,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetAll retrieves all courses with their level and program info
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseListQuery+` ORDER BY c.course_code`)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

// GetByLevelID retrieves all courses taught at a level
func (r *CourseRepository) GetByLevelID(ctx context.Context, levelID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseListQuery+` WHERE c.level_id = $1 ORDER BY c.course_code`, levelID)
	if err != nil {
		return nil, err
	}
	return scanCourses(rows)
}

// ExistsByCode reports whether a course with the given code exists
func (r *CourseRepository) ExistsByCode(ctx context.Context, courseCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
		courseCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new course after a same-transaction duplicate check on
// course_code.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
			course.CourseCode).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking course existence: %w", err)
		}
		if exists {
			return ErrCourseAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO courses (course_code, course_name, level_id, credit_unit, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING id, created_at, updated_at`,
			course.CourseCode, course.CourseName, course.LevelID, course.CreditUnit,
		).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	})
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1 AND id != $2)`,
			course.CourseCode, course.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking course uniqueness: %w", err)
		}
		if exists {
			return ErrCourseAlreadyExists
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE courses
			SET course_code = $1, course_name = $2, level_id = $3, credit_unit = $4, updated_at = NOW()
			WHERE id = $5`,
			course.CourseCode, course.CourseName, course.LevelID, course.CreditUnit, course.ID)
		if err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCourseNotFound
		}
		return nil
	})
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}
