package dto

// OfferingInput is one program/level pairing supplied on combined course
// writes.
type OfferingInput struct {
	ProgramID int64 `json:"program_id" binding:"required"`
	LevelID   int64 `json:"level_id" binding:"required"`
}

// CombinedCourseRequest is the payload for creating or updating a combined
// course. Offerings must be non-empty; the stored set is fully replaced on
// update.
type CombinedCourseRequest struct {
	CourseCode string          `json:"course_code" binding:"required"`
	CourseName string          `json:"course_name" binding:"required"`
	Offerings  []OfferingInput `json:"offerings" binding:"required,min=1"`
}
