package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/stayhub/lodging-api/docs"
	"github.com/stayhub/lodging-api/internal/api/handler"
	"github.com/stayhub/lodging-api/internal/api/metrics"
	"github.com/stayhub/lodging-api/internal/api/middleware"
	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
	infrahttp "github.com/stayhub/lodging-api/internal/infrastructure/http"
	"github.com/stayhub/lodging-api/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Users          ports.UserService
	Accommodations ports.AccommodationService
	Tokens         ports.TokenService
	Logger         zerolog.Logger

	// ReadinessChecks are run by GET /health/ready, keyed by dependency name.
	ReadinessChecks map[string]handlers.Check
	// EnforceHostRole restricts listing writes to Host accounts.
	EnforceHostRole bool
	// Registry receives HTTP and domain metrics. A fresh registry is created
	// when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	_ = reg.Register(collectors.NewGoCollector())
	_ = reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := metrics.Register(reg); err != nil {
		deps.Logger.Warn().Err(err).Msg("metrics registration failed")
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "lodging",
		Registerer: reg,
		Skipper:    skipInfraPaths,
	}))

	// --- Infrastructure routes (no auth required) ---
	infrahttp.RegisterProbes(e, deps.ReadinessChecks)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Users)
	userHandler := handler.NewUserHandler(deps.Users, deps.Accommodations)
	accommodationHandler := handler.NewAccommodationHandler(deps.Accommodations)
	auth := middleware.Auth(deps.Tokens)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me, auth)
	users.PUT("/me", userHandler.UpdateMe, auth)
	users.DELETE("/me", userHandler.DeleteMe, auth)
	users.GET("/me/accommodations", userHandler.MyAccommodations, auth)
	// Unauthenticated by design of the public API; see DESIGN.md.
	users.PUT("/:userId", userHandler.Update)
	users.DELETE("/:userId", userHandler.Delete)

	// --- Accommodation routes ---
	var hostOnly []echo.MiddlewareFunc
	if deps.EnforceHostRole {
		hostOnly = append(hostOnly, middleware.RBAC(domain.RoleHost))
	}

	accommodations := e.Group("/accommodations", auth)
	accommodations.POST("", accommodationHandler.Create, hostOnly...)
	accommodations.GET("", accommodationHandler.List)
	accommodations.GET("/:id", accommodationHandler.Get)
	accommodations.PUT("/:id", accommodationHandler.Update, hostOnly...)
	accommodations.DELETE("/:id", accommodationHandler.Delete, hostOnly...)

	return e
}

func skipInfraPaths(c echo.Context) bool {
	p := c.Path()
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger feeds echo's access log into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper:      skipInfraPaths,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			} else if v.Status >= 400 {
				ev = log.Warn()
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Msg("request")
			return nil
		},
	})
}
