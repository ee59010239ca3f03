package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/todo-system/internal/api/handler"
	"github.com/taskhub/todo-system/internal/api/middleware"
	"github.com/taskhub/todo-system/internal/core/service"
	"github.com/taskhub/todo-system/internal/infrastructure/config"
	mongodb "github.com/taskhub/todo-system/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhub/todo-system/internal/infrastructure/db/redis"
	"github.com/taskhub/todo-system/internal/infrastructure/weather"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	managerRepo := mongodb.NewManagerRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	weatherProvider := redisdb.NewWeatherCache(rdb, weather.NewClient(cfg.Weather.URL, cfg.Weather.Timeout))

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokenService)
	todoService := service.NewTodoService(todoRepo, managerRepo, weatherProvider)
	managerService := service.NewManagerService(managerRepo, todoRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, todoRepo, managerRepo)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	managerHandler := handler.NewManagerHandler(managerService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Auth(tokenService)

	// --- Auth routes (public) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Authenticated routes ---
	authed := e.Group("", authn)
	authed.POST("/todos", todoHandler.Create)
	authed.GET("/todos", todoHandler.List)
	authed.GET("/todos/:todoID", todoHandler.Get)
	authed.POST("/todos/:todoID/managers", managerHandler.Assign)
	authed.GET("/todos/:todoID/managers", managerHandler.List)
	authed.DELETE("/todos/:todoID/managers/:managerID", managerHandler.Delete)
	authed.POST("/todos/:todoID/comments", commentHandler.Save)
	authed.GET("/todos/:todoID/comments", commentHandler.List)
	authed.GET("/users/:userID", userHandler.Get)

	// --- Admin routes: audited before the handler runs ---
	admin := e.Group("/admin", authn, middleware.AccessLog(log))
	admin.PATCH("/users/:userID/role", userHandler.ChangeRole)
	admin.DELETE("/comments/:commentID", commentHandler.AdminDelete)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
