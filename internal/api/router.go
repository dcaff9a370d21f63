package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/garageworks/garage-service/docs"
	"github.com/garageworks/garage-service/internal/api/handler"
	"github.com/garageworks/garage-service/internal/api/middleware"
	"github.com/garageworks/garage-service/internal/core/domain"
)

// sharedClientRoutes are client pages whose paths also carry a POST endpoint.
// A GET there would otherwise end in 405 rather than the 404 the fallback catches.
var sharedClientRoutes = []string{
	"/signup/customer",
	"/signup/worker",
	"/signin",
}

// Options configures the router.
type Options struct {
	ClientDir    string
	CORSOrigins  []string
	ExposeErrors bool
	// EnforceAuth guards the per-principal task views with JWT + role + ownership checks.
	EnforceAuth bool
	JWTSecret   string
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Tasks  *handler.TaskHandler
	Stats  *handler.StatsHandler
	Auth   *handler.AuthHandler
	Health *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options, h Handlers, log zerolog.Logger) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, opts.ExposeErrors)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: opts.CORSOrigins}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "garage",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational ---
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Per-principal views, guarded when enforcement is on ---
	var customerOnly, workerOnly []echo.MiddlewareFunc
	if opts.EnforceAuth {
		auth := middleware.Auth(opts.JWTSecret)
		customerOnly = []echo.MiddlewareFunc{auth, middleware.RBAC(domain.RoleCustomer), middleware.Owner("licenseNumber", middleware.KeyLicenseNumber)}
		workerOnly = []echo.MiddlewareFunc{auth, middleware.RBAC(domain.RoleWorker), middleware.Owner("workerName", middleware.KeyUserName)}
	}

	// --- Tasks ---
	e.GET("/tasks", h.Tasks.List)
	e.GET("/user-tasks/:licenseNumber", h.Tasks.CustomerTasks, customerOnly...)
	e.GET("/worker-tasks-history/:workerName", h.Tasks.WorkerHistory, workerOnly...)
	e.GET("/all-customer-tasks", h.Tasks.AllCustomerTasks)
	e.GET("/all-worker-tasks", h.Tasks.AllWorkerTasks)
	e.POST("/tasks", h.Tasks.Create)
	e.PUT("/tasks/:id", h.Tasks.Finish)
	e.DELETE("/tasks/:id", h.Tasks.Delete)
	e.PUT("/tasks/:id/delete", h.Tasks.Delete)
	e.POST("/update-task-status", h.Tasks.UpdateStatus)
	e.POST("/rate-task/:taskId", h.Tasks.Rate)

	// --- Manager statistics ---
	e.GET("/worker-details", h.Stats.WorkerDetails)
	e.GET("/customer-details", h.Stats.CustomerDetails)

	// --- Auth ---
	e.POST("/signin", h.Auth.SignInCustomer)
	e.POST("/signin/worker", h.Auth.SignInWorker)
	e.POST("/signup/customer", h.Auth.SignUpCustomer)
	e.POST("/signup/worker", h.Auth.SignUpWorker)

	// --- Client app: files first, then routes, then index.html for any other GET ---
	if opts.ClientDir != "" {
		index := filepath.Join(opts.ClientDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			log.Warn().Err(err).Str("client_dir", opts.ClientDir).Msg("client app not found, serving the API only")
		} else {
			e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
				Root:    opts.ClientDir,
				HTML5:   true,
				Skipper: skipClientApp,
			}))
			for _, route := range sharedClientRoutes {
				e.File(route, index)
			}
		}
	}

	return e
}

// skipClientApp keeps the client app away from non-GET requests and the
// Swagger UI, whose wildcard route would otherwise resolve against ClientDir.
func skipClientApp(c echo.Context) bool {
	switch c.Request().Method {
	case http.MethodGet, http.MethodHead:
	default:
		return true
	}
	return strings.HasPrefix(c.Request().URL.Path, "/swagger/")
}
