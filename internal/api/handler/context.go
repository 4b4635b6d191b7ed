package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/api/middleware"
	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

// actor extracts the administrator resolved by the Auth middleware. Mutating
// handlers fail fast with 401 when no actor is present (a route wired
// without the middleware, or an open-policy deployment hitting a
// write endpoint without a token).
func actor(c echo.Context) (*domain.Administrador, error) {
	admin, _ := c.Get(middleware.ActorKey).(*domain.Administrador)
	if admin == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "administrator authentication required")
	}
	return admin, nil
}
