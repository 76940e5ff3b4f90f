package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/HafizMudassirHusain/AL-Backend/docs"
	"github.com/HafizMudassirHusain/AL-Backend/internal/api/handler"
	"github.com/HafizMudassirHusain/AL-Backend/internal/api/middleware"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/service"
	mongodb "github.com/HafizMudassirHusain/AL-Backend/internal/infrastructure/db/mongo"
	redisdb "github.com/HafizMudassirHusain/AL-Backend/internal/infrastructure/db/redis"
	"github.com/HafizMudassirHusain/AL-Backend/internal/pkg/config"
)

const (
	loginAttemptsPerWindow = 20
	loginAttemptWindow     = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("kitchen"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	slideRepo := mongodb.NewSlideRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	menuService := service.NewMenuService(menuRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	slideService := service.NewSlideService(slideRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)
	slideHandler := handler.NewSlideHandler(slideService)

	authRequired := middleware.Auth(tokenService, userRepo)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)
	superAdminOnly := middleware.RBAC(domain.RoleSuperAdmin)

	loginLimiter := redisdb.NewLoginLimiter(rdb, loginAttemptsPerWindow, loginAttemptWindow)
	loginThrottle := middleware.LoginRateLimit(loginLimiter, log)

	// --- Root and operational endpoints ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to Al-Rehman Kitchen API")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Auth and account management ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, loginThrottle)
	auth.GET("/verify", authHandler.Verify, authRequired)
	auth.GET("/users", userHandler.List, authRequired, staffOnly)
	auth.PUT("/users/:id/role", userHandler.ChangeRole, authRequired, superAdminOnly)
	auth.DELETE("/users/:id", userHandler.Delete, authRequired, superAdminOnly)

	// --- Menu catalog ---
	e.GET("/api/menu", menuHandler.List)
	e.POST("/api/menu", menuHandler.Add, authRequired, staffOnly)

	// --- Orders ---
	e.POST("/api/orders", orderHandler.Place)
	e.GET("/api/orders", orderHandler.List, authRequired, staffOnly)
	e.PUT("/api/orders/:orderId/status", orderHandler.UpdateStatus, authRequired, staffOnly)

	// --- Storefront slides ---
	e.GET("/api/slides", slideHandler.List)
	e.POST("/api/slides", slideHandler.Add, authRequired, staffOnly)
	e.PUT("/api/slides/:id", slideHandler.Update, authRequired, staffOnly)
	e.DELETE("/api/slides/:id", slideHandler.Delete, authRequired, staffOnly)

	return e
}
