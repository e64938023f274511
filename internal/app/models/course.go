package models

import "time"

// Course represents a course taught at a specific level of a program.
type Course struct {
	ID         int64     `json:"id"`
	CourseCode string    `json:"course_code" binding:"required"`
	CourseName string    `json:"course_name" binding:"required"`
	LevelID    int64     `json:"level_id" binding:"required"`
	CreditUnit int       `json:"credit_unit" binding:"required"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`

	// Relations (populated when listed)
	Level       int    `json:"level,omitempty"`
	ProgramID   int64  `json:"program_id,omitempty"`
	ProgramName string `json:"program_name,omitempty"`
}
