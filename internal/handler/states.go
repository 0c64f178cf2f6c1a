// Package handler exposes the HTTP handlers of the public API.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/states-directory/internal/model"
	"github.com/iliyamo/states-directory/internal/repository"
)

// StateDirectory is the read path behind the states endpoints.
// *repository.StateRepo satisfies it.
type StateDirectory interface {
	List(ctx context.Context, search string) ([]model.State, error)
	GetByID(ctx context.Context, id string) (model.State, error)
}

// Fixed client-facing messages.  Driver errors are logged, never returned.
const (
	msgListFailed    = "Failed to fetch states"
	msgGetFailed     = "Failed to fetch state"
	msgStateNotFound = "State not found"
)

// StateHandler serves /api/states.
type StateHandler struct {
	States StateDirectory
}

// ListStates handles GET /api/states?search=<term>.  Responds with a JSON
// array, empty when nothing matches.
func (h *StateHandler) ListStates(c echo.Context) error {
	search := c.QueryParam("search")
	states, err := h.States.List(c.Request().Context(), search)
	if err != nil {
		log.Error().Err(err).Str("search", search).Msg("Error fetching states")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgListFailed})
	}
	if states == nil {
		states = []model.State{}
	}
	return c.JSON(http.StatusOK, states)
}

// GetState handles GET /api/states/:id.  The id segment is passed through
// untouched; a token that matches no row is simply not found.
func (h *StateHandler) GetState(c echo.Context) error {
	id := c.Param("id")
	state, err := h.States.GetByID(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, state)
	case errors.Is(err, repository.ErrStateNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": msgStateNotFound})
	default:
		log.Error().Err(err).Str("id", id).Msg("Error fetching state")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msgGetFailed})
	}
}
