package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/companycatalog/catalog-api/docs"
	"github.com/companycatalog/catalog-api/internal/api/handler"
	"github.com/companycatalog/catalog-api/internal/api/middleware"
	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
	"github.com/companycatalog/catalog-api/internal/infrastructure/http/handlers"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Users     ports.UserService
	Companies ports.CompanyService
	Tokens    ports.TokenVerifier
	Mongo     *mongo.Database
	Redis     *redis.Client // may be nil
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	auth := middleware.Auth(deps.Tokens)
	userHandler := handler.NewUserHandler(deps.Users)
	companyHandler := handler.NewCompanyHandler(deps.Companies)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/register", userHandler.Register)
	users.POST("/authenticate", userHandler.Authenticate)
	users.GET("", userHandler.List, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	users.POST("", userHandler.Create, auth, middleware.RBAC(domain.RoleAdmin))
	users.GET("/:username", userHandler.Get, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser, domain.RoleCompany))
	users.PUT("/:username", userHandler.Update, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	users.DELETE("/:username", userHandler.Delete, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))

	// --- Company routes ---
	companies := e.Group("/api/company")
	companies.POST("/register", companyHandler.Register)
	companies.POST("/authenticate", companyHandler.Authenticate)
	companies.GET("", companyHandler.List, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser, domain.RoleCompany))
	companies.POST("", companyHandler.Create, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleCompany))
	companies.GET("/:companyName", companyHandler.Get, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser, domain.RoleCompany))
	companies.PUT("/:companyName", companyHandler.Update, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleCompany))
	companies.DELETE("/:companyName", companyHandler.Delete, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleCompany))

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	health := handlers.NewHealth(deps.Mongo, deps.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)

	return e
}
