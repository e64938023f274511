package models

// College represents a college of the university.
// Name is the full display name; Code is the short code shown in the
// dashboard tables.
type College struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}
