package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// ActorKey is the echo context key holding the resolved *domain.Administrador.
const ActorKey = "actor"

// Auth validates the Bearer JWT and resolves the acting administrator from
// the repository. A structurally valid token whose identity no longer
// resolves (the administrator was deleted) fails with ErrAdminNotFound via
// the central error handler. This is the single authorization gate for
// every protected route.
func Auth(jwtSecret string, admins ports.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return fmt.Errorf("missing authorization header: %w", domain.ErrInvalidToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return fmt.Errorf("invalid authorization header: %w", domain.ErrInvalidToken)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrInvalidToken
			}

			identificacion, _ := claims["id"].(string)
			if identificacion == "" {
				return fmt.Errorf("missing identity claim: %w", domain.ErrInvalidToken)
			}

			admin, err := admins.FindByIdentificacion(c.Request().Context(), identificacion)
			if err != nil {
				return err
			}

			c.Set(ActorKey, admin)
			return next(c)
		}
	}
}
