package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/chronodesk/timetracking-api/docs"
	"github.com/chronodesk/timetracking-api/internal/api/handler"
	"github.com/chronodesk/timetracking-api/internal/api/middleware"
	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
	"github.com/chronodesk/timetracking-api/internal/core/service"
	"github.com/chronodesk/timetracking-api/internal/infrastructure/config"
	mongodb "github.com/chronodesk/timetracking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/chronodesk/timetracking-api/internal/infrastructure/db/redis"
	"github.com/chronodesk/timetracking-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, blobs ports.BlobStore, removal ports.FileRemovalQueue, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timetracking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	departmentRepo := mongodb.NewDepartmentRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	fileRepo := mongodb.NewFileRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb, cfg.RefreshTokenTTL)

	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.AccessTokenTTL, log)
	userService := service.NewUserService(userRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	projectService := service.NewProjectService(projectRepo, userRepo)
	fileService := service.NewFileService(fileRepo, blobs, removal, log)
	statisticService := service.NewStatisticService(userRepo, departmentRepo, projectRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	projectHandler := handler.NewProjectHandler(projectService)
	fileHandler := handler.NewFileHandler(fileService)
	statisticHandler := handler.NewStatisticHandler(statisticService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	sessionRequired := middleware.Session(authService)

	// --- Auth routes ---
	e.POST("/auth/registration", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/refresh", authHandler.Refresh, authRequired)
	e.POST("/auth/password-change", authHandler.PasswordChange, authRequired)
	e.GET("/auth/session", authHandler.Session, authRequired, sessionRequired)

	// --- User routes ---
	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.GET("/search", userHandler.Search)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.PATCH("/:id/role", userHandler.UpdateRole, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Department routes ---
	departments := e.Group("/departments", authRequired)
	departments.GET("", departmentHandler.List)
	departments.POST("", departmentHandler.Create, adminOnly)
	departments.PUT("", departmentHandler.Update, adminOnly)
	departments.DELETE("/:id", departmentHandler.Delete, adminOnly)

	// --- Project routes ---
	projects := e.Group("/projects", authRequired)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create, adminOnly)
	projects.POST("/:id/users", projectHandler.AssignMembers, adminOnly)

	// --- File routes ---
	files := e.Group("/files", authRequired)
	files.POST("", fileHandler.Upload)
	files.GET("/:id", fileHandler.Download)
	files.DELETE("/:id", fileHandler.Delete)

	// --- Statistic routes ---
	statistics := e.Group("/statistic", authRequired)
	statistics.GET("", statisticHandler.Diagram)
	statistics.GET("/count", statisticHandler.Counts)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)

	return e
}
