// Package bootstrap wires the application together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/controllers"
	"github.com/suhaktamgu/academy/internal/app/migrations"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	appRoutes "github.com/suhaktamgu/academy/internal/app/routes"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/config"
	"github.com/suhaktamgu/academy/internal/db"
	"github.com/suhaktamgu/academy/internal/middleware"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
	"github.com/suhaktamgu/academy/internal/pkg/logger"
	"github.com/suhaktamgu/academy/internal/pkg/push"
	"github.com/suhaktamgu/academy/internal/seed"
)

// Dependencies holds everything the HTTP layer needs.
type Dependencies struct {
	Repositories *repositories.Repositories
	JWTService   *auth.JWTService
	PushClient   *push.ExpoClient

	AuthService         *services.AuthService
	PhoneLoginService   *services.PhoneLoginService
	StudentService      *services.StudentService
	ClassroomService    *services.ClassroomService
	AttendanceService   *services.AttendanceService
	GradeService        *services.GradeService
	AssignmentService   *services.AssignmentService
	DailyReportService  *services.DailyReportService
	CounselingService   *services.CounselingService
	PaymentService      *services.PaymentService
	AnnouncementService *services.AnnouncementService
	SignupService       *services.SignupService
	EntranceTestService *services.EntranceTestService
	TaskRequestService  *services.TaskRequestService
	UserService         *services.UserService
	DashboardService    *services.DashboardService
	MobileService       *services.MobileService

	AuthMiddleware *middleware.AuthMiddleware

	HealthController       *controllers.HealthController
	AuthController         *controllers.AuthController
	StudentController      *controllers.StudentController
	ClassroomController    *controllers.ClassroomController
	AttendanceController   *controllers.AttendanceController
	GradeController        *controllers.GradeController
	AssignmentController   *controllers.AssignmentController
	DailyReportController  *controllers.DailyReportController
	CounselingController   *controllers.CounselingController
	PaymentController      *controllers.PaymentController
	AnnouncementController *controllers.AnnouncementController
	SignupController       *controllers.SignupController
	EntranceTestController *controllers.EntranceTestController
	TaskRequestController  *controllers.TaskRequestController
	UserController         *controllers.UserController
	DashboardController    *controllers.DashboardController
	MobileController       *controllers.MobileController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})
	lgr := zerolog.New(os.Stdout).With().Timestamp().Logger()

	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); err == nil {
		migrator := migrations.NewMigrator(database.Pool)
		if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		lgr.Warn().Str("dir", migrationsDir).Msg("Migrations directory not found, skipping")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(ctx, database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data")
	}

	return database.Pool, nil
}

// BuildDependencies initializes repositories, services, middleware and
// controllers on top of the connection pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	repos := repositories.NewRepositories(dbPool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	pushClient := push.NewExpoClient(cfg.Push.Endpoint, cfg.Push.Enabled, lgr)

	authService := services.NewAuthService(repos.AccountRepository, jwtService)
	phoneLoginService := services.NewPhoneLoginService(
		repos.AccountRepository,
		repos.StudentRepository,
		repos.ParentLinkRepository,
		jwtService,
	)
	studentService := services.NewStudentService(repos.StudentRepository)
	classroomService := services.NewClassroomService(repos.ClassroomRepository, repos.AccountRepository, repos.StudentRepository)
	attendanceService := services.NewAttendanceService(repos.AttendanceRepository, repos.ClassroomRepository)
	gradeService := services.NewGradeService(repos.GradeRepository, repos.ClassroomRepository)
	assignmentService := services.NewAssignmentService(repos.AssignmentRepository, repos.ClassroomRepository)
	dailyReportService := services.NewDailyReportService(repos.DailyReportRepository, repos.StudentRepository, repos.ClassroomRepository)
	counselingService := services.NewCounselingService(repos.CounselingRepository, repos.StudentRepository)
	paymentService := services.NewPaymentService(repos.PaymentRepository, repos.StudentRepository)
	announcementService := services.NewAnnouncementService(repos.AnnouncementRepository, repos.PushTokenRepository, pushClient)
	signupService := services.NewSignupService(repos.SignupRequestRepository, repos.StudentRepository)
	entranceTestService := services.NewEntranceTestService(repos.EntranceTestRepository)
	taskRequestService := services.NewTaskRequestService(repos.TaskRequestRepository)
	userService := services.NewUserService(repos.AccountRepository)
	dashboardService := services.NewDashboardService(
		repos.StudentRepository,
		repos.ClassroomRepository,
		repos.SignupRequestRepository,
		repos.CounselingRepository,
		repos.AttendanceRepository,
		repos.EntranceTestRepository,
		repos.TaskRequestRepository,
		repos.AnnouncementRepository,
	)
	mobileService := services.NewMobileService(
		repos.StudentRepository,
		repos.ParentLinkRepository,
		repos.ClassroomRepository,
		repos.AttendanceRepository,
		repos.GradeRepository,
		repos.AssignmentRepository,
		repos.DailyReportRepository,
		repos.AnnouncementRepository,
		repos.PushTokenRepository,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	return &Dependencies{
		Repositories: repos,
		JWTService:   jwtService,
		PushClient:   pushClient,

		AuthService:         authService,
		PhoneLoginService:   phoneLoginService,
		StudentService:      studentService,
		ClassroomService:    classroomService,
		AttendanceService:   attendanceService,
		GradeService:        gradeService,
		AssignmentService:   assignmentService,
		DailyReportService:  dailyReportService,
		CounselingService:   counselingService,
		PaymentService:      paymentService,
		AnnouncementService: announcementService,
		SignupService:       signupService,
		EntranceTestService: entranceTestService,
		TaskRequestService:  taskRequestService,
		UserService:         userService,
		DashboardService:    dashboardService,
		MobileService:       mobileService,

		AuthMiddleware: authMiddleware,

		HealthController:       controllers.NewHealthController(dbPool),
		AuthController:         controllers.NewAuthController(authService, phoneLoginService, jwtService, cfg.Server.CookieSecure, lgr),
		StudentController:      controllers.NewStudentController(studentService, lgr),
		ClassroomController:    controllers.NewClassroomController(classroomService, lgr),
		AttendanceController:   controllers.NewAttendanceController(attendanceService, lgr),
		GradeController:        controllers.NewGradeController(gradeService, lgr),
		AssignmentController:   controllers.NewAssignmentController(assignmentService, lgr),
		DailyReportController:  controllers.NewDailyReportController(dailyReportService, lgr),
		CounselingController:   controllers.NewCounselingController(counselingService, lgr),
		PaymentController:      controllers.NewPaymentController(paymentService, lgr),
		AnnouncementController: controllers.NewAnnouncementController(announcementService, lgr),
		SignupController:       controllers.NewSignupController(signupService, lgr),
		EntranceTestController: controllers.NewEntranceTestController(entranceTestService, lgr),
		TaskRequestController:  controllers.NewTaskRequestController(taskRequestService, lgr),
		UserController:         controllers.NewUserController(userService, lgr),
		DashboardController:    controllers.NewDashboardController(dashboardService, lgr),
		MobileController:       controllers.NewMobileController(mobileService, counselingService, lgr),

		Logger: lgr,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Client-Type")
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(
		router,
		deps.HealthController,
		deps.AuthController,
		deps.StudentController,
		deps.ClassroomController,
		deps.AttendanceController,
		deps.GradeController,
		deps.AssignmentController,
		deps.DailyReportController,
		deps.CounselingController,
		deps.PaymentController,
		deps.AnnouncementController,
		deps.SignupController,
		deps.EntranceTestController,
		deps.TaskRequestController,
		deps.UserController,
		deps.DashboardController,
		deps.MobileController,
		deps.AuthMiddleware,
	)

	return router
}
