package models

// CombinedCourse mirrors an existing Course by course code and is taught
// across several program/level pairings at once.
type CombinedCourse struct {
	ID         int64  `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`

	// Offerings is the merged view: the base pairing derived from the
	// underlying course's own level and program, followed by the
	// explicitly stored pairings.
	Offerings []Offering `json:"offerings"`
}

// Offering is one program/level pairing under which a combined course is
// taught.
type Offering struct {
	ProgramID   int64  `json:"program_id"`
	ProgramName string `json:"program_name,omitempty"`
	LevelID     int64  `json:"level_id"`
	LevelNumber int    `json:"level_number,omitempty"`
}

// Same reports whether two offerings reference the same program/level pair.
func (o Offering) Same(other Offering) bool {
	return o.ProgramID == other.ProgramID && o.LevelID == other.LevelID
}
