package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// AdminHandler handles HTTP requests for the administrator registry.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Create registers a new administrator. The first administrator must be
// seeded out of band; this route requires an authenticated actor.
//
// @Summary      Create an administrator
// @Tags         administrador
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdminRequest  true  "Administrator details"
// @Success      201   {object}  domain.Administrador
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/administrador [post]
func (h *AdminHandler) Create(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateAdminInput{
		Identificacion: req.Identificacion,
		Nombres:        req.Nombres,
		Apellidos:      req.Apellidos,
		Telefono:       req.Telefono,
		Cargo:          req.Cargo,
		Empresa:        req.Empresa,
		Email:          req.Email,
		Password:       req.Password,
	}, admin)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Edit partially updates an administrator.
//
// @Summary      Edit an administrator
// @Tags         administrador
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      editAdminRequest  true  "Fields to update, keyed by identificacion"
// @Success      200   {object}  domain.Administrador
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/administrador [put]
func (h *AdminHandler) Edit(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	var req editAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Edit(c.Request().Context(), ports.EditAdminInput{
		Identificacion: req.Identificacion,
		Nombres:        req.Nombres,
		Apellidos:      req.Apellidos,
		Telefono:       req.Telefono,
		Cargo:          req.Cargo,
		Empresa:        req.Empresa,
		Email:          req.Email,
		Password:       req.Password,
	}, admin)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes an administrator.
//
// @Summary      Delete an administrator
// @Tags         administrador
// @Produce      json
// @Security     BearerAuth
// @Param        admin_id  query  string  true  "Administrator identificacion"
// @Success      200  {object}  confirmationResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/administrador [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	adminID := c.QueryParam("admin_id")
	if adminID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "admin_id is required")
	}

	detail, err := h.service.Delete(c.Request().Context(), adminID, admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, confirmationResponse{Detail: detail})
}
