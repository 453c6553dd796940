package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homeandown/listings-api/internal/api/handler"
	"github.com/homeandown/listings-api/internal/api/middleware"
	"github.com/homeandown/listings-api/internal/core/service"
	"github.com/homeandown/listings-api/internal/infrastructure/config"
	mongodb "github.com/homeandown/listings-api/internal/infrastructure/db/mongo"
	redisdb "github.com/homeandown/listings-api/internal/infrastructure/db/redis"
	"github.com/homeandown/listings-api/internal/infrastructure/http/handlers"
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
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Origins(),
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAuthorization,
			echo.HeaderXRequestedWith,
			echo.HeaderAccept,
			echo.HeaderOrigin,
		},
	}))
	e.Use(echoprometheus.NewMiddleware("homeandown"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	agentCache := redisdb.NewAgentCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authService := service.NewAuthService(userRepo, tokenService, log)
	propertyService := service.NewPropertyService(propertyRepo, userRepo, log)
	agentService := service.NewAgentService(userRepo, agentCache, log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	agentHandler := handler.NewAgentHandler(agentService)
	requireAuth := middleware.Auth(tokenService)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me)

	apiGroup.GET("/properties", propertyHandler.List)
	apiGroup.GET("/properties/:id", propertyHandler.Get)
	apiGroup.POST("/properties", propertyHandler.Create, requireAuth)

	apiGroup.GET("/agents", agentHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	apiGroup.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	apiGroup.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
