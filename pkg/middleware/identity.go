package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// UIDCookie holds the dev-login owner id.
	UIDCookie = "FARM_UID"
	// UIDHeader is set by the identity-provider proxy in front of the API.
	UIDHeader = "X-User-Id"

	DefaultDevUID = "dev-user"
)

// Identity picks the owner resolver: header-only when required, dev cookie otherwise.
func Identity(required bool) echo.MiddlewareFunc {
	if required {
		return RequireIdentity()
	}
	return DevLogin()
}

// DevLogin resolves the owner from the FARM_UID cookie, a ?uid= query value,
// or a fixed development id, and remembers the choice in the cookie.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(UIDCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = DefaultDevUID
				}
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/", HttpOnly: true})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// RequireIdentity rejects requests that arrive without the identity header.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get(UIDHeader)
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
