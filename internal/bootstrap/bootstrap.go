package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/controllers"
	appMigrations "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/migrations"
	appRepos "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	appRoutes "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/routes"
	appServices "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/config"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/db"
	appMiddleware "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
	pkgAuth "github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/auth"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/helpers"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/logger"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	CollegeService        appServices.CollegeService
	DepartmentService     appServices.DepartmentService
	ProgramService        appServices.ProgramService
	LevelService          appServices.LevelService
	CourseService         appServices.CourseService
	CombinedCourseService appServices.CombinedCourseService
	VenueService          appServices.VenueService
	StaffService          appServices.StaffService
	ExamSessionService    appServices.ExamSessionService
	MaintenanceService    appServices.MaintenanceService

	AuthController           *appControllers.AuthController
	CollegeController        *appControllers.CollegeController
	DepartmentController     *appControllers.DepartmentController
	ProgramController        *appControllers.ProgramController
	LevelController          *appControllers.LevelController
	CourseController         *appControllers.CourseController
	CombinedCourseController *appControllers.CombinedCourseController
	VenueController          *appControllers.VenueController
	StaffController          *appControllers.StaffController
	ExamSessionController    *appControllers.ExamSessionController
	MaintenanceController    *appControllers.MaintenanceController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, deps.Repos.CollegeRepository)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, deps.Repos.DepartmentRepository)
	deps.LevelService = appServices.NewLevelService(deps.Repos.LevelRepository, deps.Repos.ProgramRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.LevelRepository)
	deps.CombinedCourseService = appServices.NewCombinedCourseService(deps.Repos.CombinedCourseRepository)
	deps.VenueService = appServices.NewVenueService(deps.Repos.VenueRepository)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository, deps.Repos.CollegeRepository, deps.Repos.DepartmentRepository)
	deps.ExamSessionService = appServices.NewExamSessionService(deps.Repos.ExamSessionRepository)
	deps.MaintenanceService = appServices.NewMaintenanceService(deps.Repos.ExamSessionRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.LevelController = appControllers.NewLevelController(deps.LevelService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.CombinedCourseController = appControllers.NewCombinedCourseController(deps.CombinedCourseService)
	deps.VenueController = appControllers.NewVenueController(deps.VenueService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.ExamSessionController = appControllers.NewExamSessionController(deps.ExamSessionService)
	deps.MaintenanceController = appControllers.NewMaintenanceController(deps.MaintenanceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CollegeController,
		deps.DepartmentController,
		deps.ProgramController,
		deps.LevelController,
		deps.CourseController,
		deps.CombinedCourseController,
		deps.VenueController,
		deps.StaffController,
		deps.ExamSessionController,
		deps.MaintenanceController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
