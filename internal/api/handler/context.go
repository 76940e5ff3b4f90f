package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/api/middleware"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

// ctxIdentity extracts the caller injected by the Auth middleware and
// fast-fails before any service call: presence proves the middleware ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
