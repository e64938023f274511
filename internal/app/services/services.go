package services

import "strconv"

// Services defined in this package:
// - AuthService: account registration and login
// - CollegeService, DepartmentService, ProgramService, LevelService,
//   CourseService, VenueService, StaffService: resource CRUD
// - CombinedCourseService: combined courses and the offerings
//   reconciliation
// - MaintenanceService: end-of-year cleanup
// - ExamSessionService: read-only exam session listing

// parsePositiveID parses a decimal ID string, requiring a positive value.
func parsePositiveID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
