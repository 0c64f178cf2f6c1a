package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Health is the liveness probe.  It returns a plain text "ok" with 200.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Pinger is anything readiness depends on.  *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthHandler serves /api/health and /readyz.
type HealthHandler struct {
	Deps map[string]Pinger
	Now  func() time.Time
}

// APIHealth handles GET /api/health.
func (h *HealthHandler) APIHealth(c echo.Context) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": now().UTC().Format(time.RFC3339Nano),
	})
}

// Ready handles GET /readyz.  Every dependency must answer within 2s.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	for name, dep := range h.Deps {
		if err := dep.PingContext(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
