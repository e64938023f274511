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

// Combined course error types
var (
	ErrCombinedCourseNotFound = errors.New("combined course not found")
	ErrCombinedCourseExists   = errors.New("combined course with this code already exists")
	ErrBaseCourseMissing      = errors.New("course not in courses table")
)

// CombinedCourseFilter narrows combined course listings. ProgramID and
// LevelID match a combined course when ANY of its offerings, implicit or
// explicit, matches.
type CombinedCourseFilter struct {
	Search    string
	ProgramID *int64
	LevelID   *int64
}

// CombinedCourseRepository handles database operations for combined courses
// and their explicit offerings junction table.
type CombinedCourseRepository struct {
	db *pgxpool.Pool
}

// NewCombinedCourseRepository creates a new combined course repository
func NewCombinedCourseRepository(db *pgxpool.Pool) *CombinedCourseRepository {
	return &CombinedCourseRepository{db: db}
}

// GetByID retrieves a combined course master row by ID, without offerings.
func (r *CombinedCourseRepository) GetByID(ctx context.Context, id int64) (*models.CombinedCourse, error) {
	var cc models.CombinedCourse
	err := r.db.QueryRow(ctx,
		`SELECT id, course_code, course_name FROM combined_courses WHERE id = $1`,
		id).Scan(&cc.ID, &cc.CourseCode, &cc.CourseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCombinedCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving combined course: %w", err)
	}
	return &cc, nil
}

// List retrieves combined course master rows matching the filter, without
// offerings. All filter values are passed as query parameters.
func (r *CombinedCourseRepository) List(ctx context.Context, filter CombinedCourseFilter) ([]*models.CombinedCourse, error) {
	query := `SELECT cc.id, cc.course_code, cc.course_name FROM combined_courses cc`
	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(cc.course_code ILIKE %s OR cc.course_name ILIKE %s)", p, p))
	}
	if filter.ProgramID != nil {
		p := arg(*filter.ProgramID)
		conds = append(conds, fmt.Sprintf(`(
			EXISTS(SELECT 1 FROM combined_courses_offerings o
			       WHERE o.combined_course_id = cc.id AND o.program_id = %s)
			OR EXISTS(SELECT 1 FROM courses c JOIN levels l ON c.level_id = l.id
			          WHERE c.course_code = cc.course_code AND l.program_id = %s)
		)`, p, p))
	}
	if filter.LevelID != nil {
		p := arg(*filter.LevelID)
		conds = append(conds, fmt.Sprintf(`(
			EXISTS(SELECT 1 FROM combined_courses_offerings o
			       WHERE o.combined_course_id = cc.id AND o.level_id = %s)
			OR EXISTS(SELECT 1 FROM courses c
			          WHERE c.course_code = cc.course_code AND c.level_id = %s)
		)`, p, p))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY cc.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.CombinedCourse
	for rows.Next() {
		var cc models.CombinedCourse
		if err := rows.Scan(&cc.ID, &cc.CourseCode, &cc.CourseName); err != nil {
			return nil, err
		}
		courses = append(courses, &cc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// BaseOffering resolves the implicit offering of a combined course by
// following its course code to the underlying course's level and program.
// Returns nil when the chain does not resolve.
func (r *CombinedCourseRepository) BaseOffering(ctx context.Context, combinedCourseID int64) (*models.Offering, error) {
	var o models.Offering
	err := r.db.QueryRow(ctx, `
		SELECT l.program_id, p.name, l.id, l.level
		FROM combined_courses cc
		JOIN courses c ON cc.course_code = c.course_code
		JOIN levels l ON c.level_id = l.id
		JOIN programs p ON l.program_id = p.id
		WHERE cc.id = $1`,
		combinedCourseID).Scan(&o.ProgramID, &o.ProgramName, &o.LevelID, &o.LevelNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving base offering: %w", err)
	}
	return &o, nil
}

// ExplicitOfferings retrieves the junction-table offerings of a combined
// course in storage order.
func (r *CombinedCourseRepository) ExplicitOfferings(ctx context.Context, combinedCourseID int64) ([]models.Offering, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.program_id, p.name, o.level_id, l.level
		FROM combined_courses_offerings o
		JOIN programs p ON o.program_id = p.id
		JOIN levels l ON o.level_id = l.id
		WHERE o.combined_course_id = $1
		ORDER BY o.id`,
		combinedCourseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offerings []models.Offering
	for rows.Next() {
		var o models.Offering
		if err := rows.Scan(&o.ProgramID, &o.ProgramName, &o.LevelID, &o.LevelNumber); err != nil {
			return nil, err
		}
		offerings = append(offerings, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}

// Create inserts the master row and one explicit-offerings row per supplied
// pair. The referential check, the duplicate check and all inserts run in a
// single transaction. No de-duplication against the implicit base is
// performed on write; that happens only on read.
func (r *CombinedCourseRepository) Create(ctx context.Context, cc *models.CombinedCourse, pairs []models.Offering) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var courseExists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
			cc.CourseCode).Scan(&courseExists)
		if err != nil {
			return fmt.Errorf("error checking base course: %w", err)
		}
		if !courseExists {
			return ErrBaseCourseMissing
		}

		var dup bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM combined_courses WHERE course_code = $1)`,
			cc.CourseCode).Scan(&dup)
		if err != nil {
			return fmt.Errorf("error checking combined course existence: %w", err)
		}
		if dup {
			return ErrCombinedCourseExists
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO combined_courses (course_code, course_name)
			VALUES ($1, $2)
			RETURNING id`,
			cc.CourseCode, cc.CourseName).Scan(&cc.ID)
		if err != nil {
			return fmt.Errorf("error inserting combined course: %w", err)
		}

		return insertOfferings(ctx, tx, cc.ID, pairs)
	})
}

// Update updates the master row and fully replaces the explicit offerings
// set: delete all, then reinsert the supplied pairs. Runs in a single
// transaction so no reader can observe the course with its offerings
// deleted but not yet reinserted.
func (r *CombinedCourseRepository) Update(ctx context.Context, cc *models.CombinedCourse, pairs []models.Offering) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM combined_courses WHERE id = $1)`,
			cc.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking combined course: %w", err)
		}
		if !exists {
			return ErrCombinedCourseNotFound
		}

		_, err = tx.Exec(ctx, `
			UPDATE combined_courses SET course_code = $1, course_name = $2 WHERE id = $3`,
			cc.CourseCode, cc.CourseName, cc.ID)
		if err != nil {
			return fmt.Errorf("error updating combined course: %w", err)
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM combined_courses_offerings WHERE combined_course_id = $1`, cc.ID)
		if err != nil {
			return fmt.Errorf("error clearing offerings: %w", err)
		}

		return insertOfferings(ctx, tx, cc.ID, pairs)
	})
}

// Delete removes the explicit offerings and then the master row in one
// transaction.
func (r *CombinedCourseRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM combined_courses_offerings WHERE combined_course_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting offerings: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM combined_courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting combined course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCombinedCourseNotFound
		}
		return nil
	})
}

func insertOfferings(ctx context.Context, tx pgx.Tx, combinedCourseID int64, pairs []models.Offering) error {
	for _, pair := range pairs {
		_, err := tx.Exec(ctx, `
			INSERT INTO combined_courses_offerings (combined_course_id, program_id, level_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (combined_course_id, program_id, level_id) DO NOTHING`,
			combinedCourseID, pair.ProgramID, pair.LevelID)
		if err != nil {
			return fmt.Errorf("error inserting offering: %w", err)
		}
	}
	return nil
}
