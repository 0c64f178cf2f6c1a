package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/states-directory/internal/handler"
	"github.com/iliyamo/states-directory/internal/middleware"
)

// Deps bundles the handlers and cross-cutting pieces the routes need.
type Deps struct {
	States    *handler.StateHandler
	Greetings *handler.GreetingHandler
	Health    *handler.HealthHandler

	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer // served on /metrics; nil disables the route

	CORSAllowOrigins []string
}

// New builds the Echo instance with the global middleware stack and every
// route registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	// Recover sits inside the logger and metrics so a panic is committed as
	// a 500 before they read the response status.
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().Err(err).Str("route", c.Path()).Bytes("stack", stack).Msg("panic recovered")
			return err
		},
	}))
	// Security headers (X-Content-Type-Options: nosniff and friends).
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: d.CORSAllowOrigins}))

	RegisterRoutes(e, d.Health)
	RegisterAPI(e, d)
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	return e
}

// RegisterRoutes registers the probe endpoints used by load balancers and
// orchestrators.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/healthz", handler.Health)
	if h != nil {
		e.GET("/readyz", h.Ready)
	}
}

// RegisterAPI registers the JSON API under /api.  None of these routes
// require authentication.
func RegisterAPI(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	if d.Health != nil {
		api.GET("/health", d.Health.APIHealth)
	}
	if d.Greetings != nil {
		api.GET("/hello", d.Greetings.Hello)
		api.GET("/greetings", d.Greetings.Greetings)
	}
	if d.States != nil {
		api.GET("/states", d.States.ListStates)
		api.GET("/states/:id", d.States.GetState)
	}
}
