package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/api/metrics"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// AuthHandler issues session tokens to administrators.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token authenticates an administrator and returns a bearer token.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Administrator identificacion"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	admin, err := h.authService.Authenticate(c.Request().Context(), username, password)
	if err != nil {
		metrics.LoginFailuresTotal.Inc()
		return err
	}

	token, err := h.authService.IssueToken(admin)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
