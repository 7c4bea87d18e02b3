package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/carelink/portal-api/docs"
	"github.com/carelink/portal-api/internal/api/handler"
	"github.com/carelink/portal-api/internal/api/middleware"
	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

// Deps carries everything the router needs wired in. Services are built in
// main so their lifecycles (audit dispatcher, session restore) stay with the
// process, not the transport.
type Deps struct {
	Sessions     ports.SessionService
	Appointments ports.AppointmentService
	Directory    ports.CredentialSource
	Mongo        *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	TokenTTL     time.Duration
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Sessions, d.JWTSecret, d.TokenTTL)
	profileHandler := handler.NewProfileHandler(d.Directory)
	appointmentHandler := handler.NewAppointmentHandler(d.Appointments)
	authRequired := middleware.Auth(d.JWTSecret)

	// --- Auth / session ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout)
	e.GET("/v1/auth/session", authHandler.Session)

	// --- Dashboards ---
	e.GET("/v1/profile", profileHandler.Get, authRequired)

	appointments := e.Group("/v1/appointments", authRequired)
	appointments.POST("", appointmentHandler.Book, middleware.RequireRole(domain.RolePatient))
	appointments.GET("", appointmentHandler.List, middleware.RequireRole(domain.RoleDoctor, domain.RolePatient))
	appointments.PATCH("/:id/status", appointmentHandler.UpdateStatus, middleware.RequireRole(domain.RoleDoctor))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
