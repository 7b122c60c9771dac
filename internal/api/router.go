package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencourses/course-api/internal/api/handler"
	"github.com/opencourses/course-api/internal/api/middleware"
	"github.com/opencourses/course-api/internal/core/ports"
	"github.com/opencourses/course-api/internal/core/service"
	mongodb "github.com/opencourses/course-api/internal/infrastructure/db/mongo"
	redisdb "github.com/opencourses/course-api/internal/infrastructure/db/redis"
	"github.com/opencourses/course-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courseapi"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.EnableGlobalErrorLogging)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)

	var cache ports.CourseCache
	if rdb != nil {
		cache = redisdb.NewCourseCache(rdb, log)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	courseService := service.NewCourseService(courseRepo, cache, log)

	userHandler := handler.NewUserHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	authRequired := middleware.Auth(authService)

	// --- Root ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Welcome to the REST API project!",
		})
	})

	// --- Course routes (reads are public, mutations gated) ---
	e.GET("/courses", courseHandler.List)
	e.GET("/courses/:id", courseHandler.Get)
	e.POST("/courses", courseHandler.Create, authRequired)
	e.PUT("/courses/:id", courseHandler.Update, authRequired)
	e.DELETE("/courses/:id", courseHandler.Delete, authRequired)

	// --- User routes ---
	e.GET("/users", userHandler.GetCurrent, authRequired)
	e.POST("/users", userHandler.Create)
	e.POST("/users/login", userHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
