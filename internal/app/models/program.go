package models

// Program represents a degree program run by a department
type Program struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required"`

	DepartmentName string `json:"department_name,omitempty"`
}
