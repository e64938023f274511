package models

// Department represents a department in a college
type Department struct {
	ID        int64  `json:"id"`
	CollegeID int64  `json:"college_id" binding:"required"`
	Name      string `json:"name" binding:"required"`

	// Populated on reads for the dashboard tables
	CollegeName string `json:"college_name,omitempty"`
}
