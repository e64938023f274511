package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository        *CollegeRepository
	DepartmentRepository     *DepartmentRepository
	ProgramRepository        *ProgramRepository
	LevelRepository          *LevelRepository
	CourseRepository         *CourseRepository
	CombinedCourseRepository *CombinedCourseRepository
	VenueRepository          *VenueRepository
	StaffRepository          *StaffRepository
	ExamSessionRepository    *ExamSessionRepository
	UserRepository           *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository:        NewCollegeRepository(db),
		DepartmentRepository:     NewDepartmentRepository(db),
		ProgramRepository:        NewProgramRepository(db),
		LevelRepository:          NewLevelRepository(db),
		CourseRepository:         NewCourseRepository(db),
		CombinedCourseRepository: NewCombinedCourseRepository(db),
		VenueRepository:          NewVenueRepository(db),
		StaffRepository:          NewStaffRepository(db),
		ExamSessionRepository:    NewExamSessionRepository(db),
		UserRepository:           NewUserRepository(db),
	}
}
