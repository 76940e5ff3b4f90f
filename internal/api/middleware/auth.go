package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// IdentityKey is the context key under which Auth stores the resolved caller.
const IdentityKey = "identity"

// Auth validates the bearer token and resolves the live user behind it.
// Token verification is self-contained; the store lookup afterwards makes
// sure deleted accounts lose access immediately and that role checks see
// the current role, not the issuance-time snapshot. Every failure branch
// short-circuits with 401.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}

			c.Set(IdentityKey, domain.Identity{ID: user.ID, Name: user.Name, Role: user.Role})
			return next(c)
		}
	}
}
