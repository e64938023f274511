package models

// Staff represents a member of staff attached to a college and department.
type Staff struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	CollegeID    int64  `json:"college_id" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required"`
	Position     string `json:"position" binding:"required"`

	CollegeName    string `json:"college_name,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
}
