package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/j88moja/inventory-system/docs"
	"github.com/j88moja/inventory-system/internal/api/handler"
	"github.com/j88moja/inventory-system/internal/api/metrics"
	"github.com/j88moja/inventory-system/internal/api/middleware"
	"github.com/j88moja/inventory-system/internal/core/ports"
	"github.com/j88moja/inventory-system/internal/infrastructure/http/handlers"
)

// Dependencies are the services and adapters the router wires into handlers.
type Dependencies struct {
	Logger zerolog.Logger

	Credentials ports.CredentialService
	Resets      ports.ResetService
	Accounts    ports.AccountService
	Products    ports.ProductService
	Contact     ports.ContactService

	// ForgotPasswordLimiter throttles POST /api/users/forgotpassword.
	ForgotPasswordLimiter middleware.Limiter
	// Readiness lists the dependencies checked by /health/ready.
	Readiness map[string]handlers.Pinger

	// Registry receives the HTTP metrics and backs /metrics. Defaults to the
	// global Prometheus registry, where the domain counters live.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "inventory",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Credentials, deps.Resets)
	userHandler := handler.NewUserHandler(deps.Accounts)
	productHandler := handler.NewProductHandler(deps.Products)
	contactHandler := handler.NewContactHandler(deps.Contact)
	requireSession := middleware.Auth(deps.Credentials)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/logout", authHandler.Logout)
	users.GET("/loggedin", authHandler.LoginStatus)
	users.GET("/getuser", userHandler.GetUser, requireSession)
	users.PATCH("/updateuser", userHandler.UpdateUser, requireSession)
	users.PATCH("/changepassword", userHandler.ChangePassword, requireSession)
	users.POST("/forgotpassword", authHandler.ForgotPassword, middleware.RateLimit(middleware.RateLimitConfig{
		Limiter: deps.ForgotPasswordLimiter,
		Logger:  deps.Logger,
		OnLimited: func() {
			metrics.ResetRequestsTotal.WithLabelValues("throttled").Inc()
		},
	}))
	users.PUT("/resetpassword/:resetToken", authHandler.ResetPassword)

	// --- Product routes (session required) ---
	products := e.Group("/api/products", requireSession)
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PATCH("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	e.POST("/api/contactus", contactHandler.Send, requireSession)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Home Page")
	})

	return e
}
