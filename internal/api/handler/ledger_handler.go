package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// LedgerHandler handles ticket-balance operations and trip history.
type LedgerHandler struct {
	service ports.LedgerService
}

func NewLedgerHandler(service ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// SetTickets assigns a new ticket balance to a student and resets the trip
// counter.
//
// @Summary      Set a student's ticket balance
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        identificacion  path   string  true  "Student identificacion"
// @Param        tickets         query  int     true  "New ticket balance"
// @Success      200  {object}  domain.Estudiante
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/estudiantes/tickets/{identificacion} [put]
func (h *LedgerHandler) SetTickets(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	tickets, err := strconv.Atoi(c.QueryParam("tickets"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "tickets must be an integer")
	}

	student, err := h.service.SetTickets(c.Request().Context(), c.Param("identificacion"), tickets, admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Discount redeems one ticket and records the trip.
//
// @Summary      Redeem one ticket
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        identificacion  path  string  true  "Student identificacion"
// @Success      200  {object}  domain.Estudiante
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/estudiantes/tickets/delete/{identificacion} [put]
func (h *LedgerHandler) Discount(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	student, err := h.service.DiscountTicket(c.Request().Context(), c.Param("identificacion"), admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// ListTrips returns a student's redemption history, newest first.
//
// @Summary      List a student's trips
// @Tags         viajes
// @Produce      json
// @Security     BearerAuth
// @Param        identificacion  path  string  true  "Student identificacion"
// @Success      200  {array}   domain.Viaje
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/viajes/{identificacion} [get]
func (h *LedgerHandler) ListTrips(c echo.Context) error {
	trips, err := h.service.ListTrips(c.Request().Context(), c.Param("identificacion"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trips)
}
