package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nailyse/salon-api/internal/api/handler"
	"github.com/nailyse/salon-api/internal/api/middleware"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// Deps carries everything the router needs. Handlers depend only on the
// service ports, so tests can wire in-memory implementations; Mongo and
// Redis are used for the readiness probe and may be nil in tests, in which
// case the probe is not registered.
type Deps struct {
	Logger zerolog.Logger

	Auth         ports.AuthService
	Users        ports.UserService
	Products     ports.ProductService
	Appointments ports.AppointmentService
	Payments     ports.PaymentService

	Mongo *mongo.Database
	Redis *redis.Client

	// FrontendURL is the allowed CORS origin of the SPA.
	FrontendURL string
	// StaticDir, when non-empty, is served at / for a built SPA bundle.
	StaticDir string
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
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{deps.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	// Request metrics go to a per-router registry so building several
	// routers in one process does not trip duplicate registration.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "nailyse",
		Registerer: promRegistry,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	productHandler := handler.NewProductHandler(deps.Products)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)

	authRequired := middleware.Auth(deps.Auth)

	// --- Auth ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Users ---
	// Account creation is public and shares the register semantics.
	e.POST("/api/users", authHandler.Register)
	users := e.Group("/api/users", authRequired)
	users.GET("", userHandler.List, middleware.RequireAdmin())
	users.GET("/:id", userHandler.Get, middleware.RequireAdminOrSelf())
	users.PATCH("/:id", userHandler.Update, middleware.RequireAdminOrSelf())
	users.DELETE("/:id", userHandler.Delete, middleware.RequireAdmin())

	// --- Products: public catalogue, admin mutations ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)
	products := e.Group("/api/products", authRequired, middleware.RequireAdmin())
	products.POST("", productHandler.Create)
	products.PATCH("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Appointments: public booking, admin management ---
	e.POST("/api/appointments", appointmentHandler.Create)
	appointments := e.Group("/api/appointments", authRequired, middleware.RequireAdmin())
	appointments.GET("", appointmentHandler.List)
	appointments.GET("/:id", appointmentHandler.Get)
	appointments.PATCH("/:id", appointmentHandler.Update)
	appointments.DELETE("/:id", appointmentHandler.Delete)

	// --- Payment ---
	e.POST("/api/payment/create-session", paymentHandler.CreateSession)
	e.POST("/api/payment/confirm", paymentHandler.Confirm)

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, promRegistry},
	}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	if deps.StaticDir != "" {
		e.Static("/", deps.StaticDir)
	}

	return e
}
