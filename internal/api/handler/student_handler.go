package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for the student registry.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Create registers a new student.
//
// @Summary      Register a student
// @Tags         estudiantes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStudentRequest  true  "Student registration details"
// @Success      201   {object}  domain.Estudiante
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/estudiantes [post]
func (h *StudentHandler) Create(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	student, err := h.service.Create(c.Request().Context(), ports.CreateStudentInput{
		TipoIdentificacion: req.TipoIdentificacion,
		Identificacion:     req.Identificacion,
		Nombres:            req.Nombres,
		Apellidos:          req.Apellidos,
		Institucion:        req.Institucion,
		Telefono:           req.Telefono,
		Direccion:          req.Direccion,
		Email:              req.Email,
		Password:           req.Password,
	}, admin)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, student)
}

// Get returns a single student by identificacion.
//
// @Summary      Get a student
// @Tags         estudiantes
// @Produce      json
// @Security     BearerAuth
// @Param        identificacion  path  string  true  "Student identificacion"
// @Success      200  {object}  domain.Estudiante
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/estudiantes/{identificacion} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.GetByIdentificacion(c.Request().Context(), c.Param("identificacion"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// List returns every registered student.
//
// @Summary      List students
// @Tags         estudiantes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Estudiante
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/estudiantes [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// Delete hard-deletes a student.
//
// @Summary      Delete a student
// @Tags         estudiantes
// @Produce      json
// @Security     BearerAuth
// @Param        identification  query  string  true  "Student identificacion"
// @Success      200  {object}  confirmationResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/estudiantes [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	admin, err := actor(c)
	if err != nil {
		return err
	}

	identification := c.QueryParam("identification")
	if identification == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identification is required")
	}

	detail, err := h.service.Delete(c.Request().Context(), identification, admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, confirmationResponse{Detail: detail})
}
