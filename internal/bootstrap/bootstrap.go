package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/okandemir/melodia/docs" // generated swagger docs
	appControllers "github.com/okandemir/melodia/internal/app/controllers"
	appMigrations "github.com/okandemir/melodia/internal/app/migrations"
	appRepos "github.com/okandemir/melodia/internal/app/repositories"
	appRoutes "github.com/okandemir/melodia/internal/app/routes"
	appServices "github.com/okandemir/melodia/internal/app/services"
	"github.com/okandemir/melodia/internal/config"
	"github.com/okandemir/melodia/internal/db"
	appMiddleware "github.com/okandemir/melodia/internal/middleware"
	pkgAuth "github.com/okandemir/melodia/internal/pkg/auth"
	"github.com/okandemir/melodia/internal/pkg/helpers"
	"github.com/okandemir/melodia/internal/pkg/logger"
	"github.com/okandemir/melodia/internal/scheduler"
	"github.com/okandemir/melodia/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	TeacherService    appServices.TeacherService
	StudentService    appServices.StudentService
	RoomService       appServices.RoomService
	CourseService     appServices.CourseService
	HolidayService    appServices.HolidayService
	LessonService     appServices.LessonService
	GenerationService *appServices.GenerationService

	AuthController       *appControllers.AuthController
	TeacherController    *appControllers.TeacherController
	StudentController    *appControllers.StudentController
	RoomController       *appControllers.RoomController
	CourseController     *appControllers.CourseController
	HolidayController    *appControllers.HolidayController
	LessonController     *appControllers.LessonController
	GenerationController *appControllers.GenerationController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Scheduler      *scheduler.Scheduler
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A missing admin account is recoverable; keep starting up.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.LessonRepository,
	)
	deps.HolidayService = appServices.NewHolidayService(deps.Repos.HolidayRepository)
	deps.LessonService = appServices.NewLessonService(deps.Repos.LessonRepository)
	deps.GenerationService = appServices.NewGenerationService(
		deps.Repos.CourseRepository,
		deps.Repos.HolidayRepository,
		deps.Repos.LessonRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.HolidayController = appControllers.NewHolidayController(deps.HolidayService)
	deps.LessonController = appControllers.NewLessonController(deps.LessonService)
	deps.GenerationController = appControllers.NewGenerationController(deps.GenerationService)

	if cfg.Generation.Enabled {
		sched, err := scheduler.New(cfg, deps.GenerationService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize generation scheduler: %w", err)
		}
		deps.Scheduler = sched
	}

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Swagger UI is not exposed in production.
	if gin.Mode() != gin.ReleaseMode {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.TeacherController,
		deps.StudentController,
		deps.RoomController,
		deps.CourseController,
		deps.HolidayController,
		deps.LessonController,
		deps.GenerationController,
		deps.AuthMiddleware,
	)

	return router
}
