package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger writes one zerolog line per request once the handler has
// returned.  Server errors log at error level, client errors at warn.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the HTTP error handler commit the response so the
				// logged status is the one the client saw
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			var ev *zerolog.Event
			switch {
			case res.Status >= 500:
				ev = log.Error()
			case res.Status >= 400:
				ev = log.Warn()
			default:
				ev = log.Info()
			}
			ev.Str("method", req.Method).
				Str("route", c.Path()).
				Str("uri", req.RequestURI).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")
			return nil
		}
	}
}
