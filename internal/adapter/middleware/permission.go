package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequirePermission gates a route on a named permission of the authenticated
// user's role. Must run after Authenticate.
func RequirePermission(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			usr, ok := UserFrom(c)
			if !ok {
				return unauthorized(c, "authentication required")
			}
			if !usr.HasPermission(name) {
				return c.JSON(http.StatusForbidden, map[string]any{
					"status":  false,
					"message": "missing permission: " + name,
				})
			}
			return next(c)
		}
	}
}
