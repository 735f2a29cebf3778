package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autopark/rental-system/internal/api/handler"
	"github.com/autopark/rental-system/internal/api/middleware"
	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/service"
	"github.com/autopark/rental-system/internal/infrastructure/config"
	mongodb "github.com/autopark/rental-system/internal/infrastructure/db/mongo"
	redisdb "github.com/autopark/rental-system/internal/infrastructure/db/redis"
	httphandlers "github.com/autopark/rental-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is constructed by the caller so its workers share the process
// lifecycle context.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit service.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("autopark"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	carRepo := mongodb.NewCarRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	bookingService := service.NewBookingService(bookingRepo, carRepo, userRepo, audit, cfg.StrictAvailability, log)
	carService := service.NewCarService(carRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	carHandler := handler.NewCarHandler(carService)
	userHandler := handler.NewUserHandler(userService, authService)

	requireToken := middleware.Auth(tokenService)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes (open) ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)

	// --- User administration (admin only) ---
	users := e.Group("/api/users", requireToken, requireAdmin)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/search", userHandler.Search)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	// --- Fleet: browsing is open, mutation is admin only ---
	e.GET("/api/cars", carHandler.List)
	e.GET("/api/cars/available", carHandler.ListAvailable)
	e.GET("/api/cars/:id", carHandler.Get)
	e.POST("/api/cars", carHandler.Create, requireToken, requireAdmin)
	e.DELETE("/api/cars/:id", carHandler.Delete, requireToken, requireAdmin)

	// --- Bookings: every route requires a valid session token ---
	bookings := e.Group("/api/bookings", requireToken)
	bookings.POST("", bookingHandler.Create)
	bookings.DELETE("/:id", bookingHandler.Cancel)
	bookings.GET("", bookingHandler.ListAll, requireAdmin)
	bookings.GET("/user/:userId", bookingHandler.ListByUser)
	bookings.GET("/car/:carId", bookingHandler.ListByCar)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
