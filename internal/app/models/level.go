package models

// Level represents a study level (100, 200, ...) within a program,
// together with its enrolled student count.
type Level struct {
	ID            int64 `json:"id"`
	ProgramID     int64 `json:"program_id" binding:"required"`
	Level         int   `json:"level" binding:"required"`
	StudentsCount int   `json:"students_count" binding:"required"`

	ProgramName string `json:"program_name,omitempty"`
}
