package models

import "time"

// ExamSession is a scheduled examination sitting. Exactly one of CourseID or
// CombinedCourseID is set; CourseName carries whichever name applies.
type ExamSession struct {
	ID               int64     `json:"exam_id"`
	CourseID         *int64    `json:"course_id,omitempty"`
	CombinedCourseID *int64    `json:"combined_course_id,omitempty"`
	CourseName       string    `json:"course"`
	VenueID          int64     `json:"-"`
	VenueName        string    `json:"venue"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
}
