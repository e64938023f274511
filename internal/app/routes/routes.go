package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/controllers"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public so the
// dashboard can render without a session; every mutation requires a valid
// token, and maintenance operations require the admin role.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	departmentController *controllers.DepartmentController,
	programController *controllers.ProgramController,
	levelController *controllers.LevelController,
	courseController *controllers.CourseController,
	combinedCourseController *controllers.CombinedCourseController,
	venueController *controllers.VenueController,
	staffController *controllers.StaffController,
	examSessionController *controllers.ExamSessionController,
	maintenanceController *controllers.MaintenanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	v1.GET("/colleges", collegeController.GetAllColleges)
	v1.GET("/colleges/:id", collegeController.GetCollegeByID)
	v1.GET("/departments", departmentController.GetAllDepartments)
	v1.GET("/departments/:id", departmentController.GetDepartmentByID)
	v1.GET("/programs", programController.GetAllPrograms)
	v1.GET("/levels", levelController.GetAllLevels)
	v1.GET("/courses", courseController.GetAllCourses)
	v1.GET("/combined-courses", combinedCourseController.ListCombinedCourses)
	v1.GET("/combined-courses/:id", combinedCourseController.GetCombinedCourseByID)
	v1.GET("/venues", venueController.GetAllVenues)
	v1.GET("/staff", staffController.GetAllStaff)
	v1.GET("/exam-sessions", examSessionController.GetAllExamSessions)

	// --- Authenticated mutation routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		colleges := authenticated.Group("/colleges")
		{
			colleges.POST("", collegeController.CreateCollege)
			colleges.PUT("/:id", collegeController.UpdateCollege)
			colleges.DELETE("/:id", collegeController.DeleteCollege)
		}

		departments := authenticated.Group("/departments")
		{
			departments.POST("", departmentController.CreateDepartment)
			departments.PUT("/:id", departmentController.UpdateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}

		programs := authenticated.Group("/programs")
		{
			programs.POST("", programController.CreateProgram)
			programs.PUT("/:id", programController.UpdateProgram)
			programs.DELETE("/:id", programController.DeleteProgram)
		}

		levels := authenticated.Group("/levels")
		{
			levels.POST("", levelController.CreateLevel)
			levels.PUT("/:id", levelController.UpdateLevel)
			levels.DELETE("/:id", levelController.DeleteLevel)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		combinedCourses := authenticated.Group("/combined-courses")
		{
			combinedCourses.POST("", combinedCourseController.CreateCombinedCourse)
			combinedCourses.PUT("/:id", combinedCourseController.UpdateCombinedCourse)
			combinedCourses.DELETE("/:id", combinedCourseController.DeleteCombinedCourse)
		}

		venues := authenticated.Group("/venues")
		{
			venues.POST("", venueController.CreateVenue)
			venues.PUT("/:id", venueController.UpdateVenue)
			venues.DELETE("/:id", venueController.DeleteVenue)
		}

		staff := authenticated.Group("/staff")
		{
			staff.POST("", staffController.CreateStaff)
			staff.PUT("/:id", staffController.UpdateStaff)
			staff.DELETE("/:id", staffController.DeleteStaff)
		}

		// Maintenance routes are admin only
		maintenance := authenticated.Group("/maintenance")
		maintenance.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			maintenance.POST("/end-of-year-cleanup", maintenanceController.EndOfYearCleanup)
		}
	}
}
