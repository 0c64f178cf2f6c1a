package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/states-directory/internal/greeting"
	"github.com/iliyamo/states-directory/internal/model"
	"github.com/iliyamo/states-directory/internal/queue"
	"github.com/iliyamo/states-directory/internal/service"
)

// GreetingHandler serves the greeting endpoints.  Counter is injected so the
// numbering has an explicit owner and lifetime.
type GreetingHandler struct {
	Counter   greeting.Counter
	Publisher service.GreetingPublisher
	Now       func() time.Time
}

// Hello handles GET /api/hello?name=<name>.
func (h *GreetingHandler) Hello(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		name = greeting.DefaultName
	}
	id, err := h.Counter.Next(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Error numbering greeting")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create greeting"})
	}
	out := model.HelloGreeting{ID: id, Message: greeting.Hello(name)}

	if h.Publisher != nil {
		ev := queue.GreetingIssuedEvent{
			ID:       out.ID,
			Name:     name,
			Message:  out.Message,
			IssuedAt: h.now().UTC().Format(time.RFC3339),
		}
		// the response does not wait on the broker
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.Publisher.PublishGreetingIssued(ctx, ev); err != nil {
				log.Warn().Err(err).Int64("greeting_id", ev.ID).Msg("greeting event not published")
			}
		}()
	}
	return c.JSON(http.StatusOK, out)
}

// Greetings handles GET /api/greetings.
func (h *GreetingHandler) Greetings(c echo.Context) error {
	return c.JSON(http.StatusOK, greeting.All())
}

func (h *GreetingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
