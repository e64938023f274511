package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/db"
)

// ExamSessionRepository handles database operations for exam sessions.
// Sessions are written by the (external) scheduling workflow; this service
// only lists and clears them.
type ExamSessionRepository struct {
	db *pgxpool.Pool
}

// NewExamSessionRepository creates a new exam session repository
func NewExamSessionRepository(db *pgxpool.Pool) *ExamSessionRepository {
	return &ExamSessionRepository{db: db}
}

// GetAll retrieves all exam sessions with the course (or combined course)
// name and venue name attached.
func (r *ExamSessionRepository) GetAll(ctx context.Context) ([]*models.ExamSession, error) {
	query := `
		SELECT e.id, e.course_id, e.combined_course_id,
		       COALESCE(c.course_name, cc.course_name, ''),
		       e.venue_id, v.name, e.start_time, e.end_time
		FROM exam_sessions e
		LEFT JOIN courses c ON e.course_id = c.id
		LEFT JOIN combined_courses cc ON e.combined_course_id = cc.id
		JOIN venues v ON e.venue_id = v.id
		ORDER BY e.start_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.ExamSession
	for rows.Next() {
		var session models.ExamSession
		if err := rows.Scan(
			&session.ID,
			&session.CourseID,
			&session.CombinedCourseID,
			&session.CourseName,
			&session.VenueID,
			&session.VenueName,
			&session.StartTime,
			&session.EndTime,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// DeleteAll clears every exam session as part of the end-of-year cleanup.
// Returns the number of removed sessions.
func (r *ExamSessionRepository) DeleteAll(ctx context.Context) (int64, error) {
	var removed int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM exam_sessions`)
		if err != nil {
			return fmt.Errorf("error clearing exam sessions: %w", err)
		}
		removed = cmdTag.RowsAffected()
		return nil
	})
	return removed, err
}
