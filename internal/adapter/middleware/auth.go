package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/usecase/auth"
	"fieldservice-backend/pkg/token"
)

// Context keys set by Authenticate.
const (
	ContextUserKey   = "auth.user"
	ContextClaimsKey = "auth.claims"
)

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{"status": false, "message": msg})
}

// Authenticate validates the Bearer access token, rejects revoked tokens and
// loads the user with role and permissions into the request context.
func Authenticate(secret string, users user.Repository, denylist auth.Denylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "missing authorization header")
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return unauthorized(c, "authorization header must be a Bearer token")
			}

			claims, err := token.Parse(strings.TrimSpace(raw), secret)
			if err != nil {
				return unauthorized(c, "invalid or expired token")
			}
			if claims.Kind != token.KindAccess {
				return unauthorized(c, "token is not an access token")
			}
			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return unauthorized(c, "could not verify token")
				}
				if revoked {
					return unauthorized(c, "token has been revoked")
				}
			}

			usr, err := users.GetByIDWithAccess(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return unauthorized(c, "user no longer exists")
				}
				return err
			}

			c.Set(ContextUserKey, usr)
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// UserFrom returns the authenticated user placed by Authenticate.
func UserFrom(c echo.Context) (*user.User, bool) {
	usr, ok := c.Get(ContextUserKey).(*user.User)
	return usr, ok
}

// ClaimsFrom returns the token claims placed by Authenticate.
func ClaimsFrom(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(ContextClaimsKey).(*token.Claims)
	return claims, ok
}
