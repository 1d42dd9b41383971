package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/simbirgo/rental-api/internal/api/handler"
	"github.com/simbirgo/rental-api/internal/api/middleware"
	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
	"github.com/simbirgo/rental-api/internal/core/token"
)

// Deps carries everything the router needs to wire the endpoints.
type Deps struct {
	Accounts   ports.AccountService
	Transports ports.TransportService
	Tokens     *token.Manager
	Mongo      *mongo.Database
	Redis      *redis.Client
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	authn := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Account routes ---
	accountHandler := handler.NewAccountHandler(deps.Accounts)
	account := e.Group("/api/account")
	account.POST("/sign-in", accountHandler.SignIn)
	account.POST("/sign-up", accountHandler.SignUp)
	account.POST("/sign-out", accountHandler.SignOut, authn)
	account.GET("/me", accountHandler.Me, authn)
	account.PUT("/update", accountHandler.Update, authn)

	// --- Admin account routes ---
	adminAccountHandler := handler.NewAdminAccountHandler(deps.Accounts)
	adminAccount := e.Group("/api/admin/account", authn, adminOnly)
	adminAccount.GET("", adminAccountHandler.List)
	adminAccount.GET("/:id", adminAccountHandler.Get)
	adminAccount.POST("", adminAccountHandler.Create)
	adminAccount.PUT("/:id", adminAccountHandler.Update)
	adminAccount.DELETE("/:id", adminAccountHandler.Delete)

	// --- Transport routes ---
	transportHandler := handler.NewTransportHandler(deps.Transports)
	transport := e.Group("/api/transport")
	transport.GET("/:id", transportHandler.Get)
	transport.POST("", transportHandler.Create, authn)
	transport.PUT("/:id", transportHandler.Update, authn)
	transport.DELETE("/:id", transportHandler.Delete, authn)

	// --- Admin transport routes ---
	adminTransportHandler := handler.NewAdminTransportHandler(deps.Transports)
	adminTransport := e.Group("/api/admin/transport", authn, adminOnly)
	adminTransport.GET("", adminTransportHandler.List)
	adminTransport.GET("/:id", adminTransportHandler.Get)
	adminTransport.POST("", adminTransportHandler.Create)
	adminTransport.PUT("/:id", adminTransportHandler.Update)
	adminTransport.DELETE("/:id", adminTransportHandler.Delete)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
