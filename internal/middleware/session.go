package middleware // reusable HTTP middleware for the club API

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/utils"
)

// identityKey is the context key under which Session stores the decoded
// caller identity.  Handlers retrieve it via IdentityFrom.
const identityKey = "identity"

// Session returns an Echo middleware that validates the caller's
// session token and injects the decoded identity into the request
// context.  The token is read from the httpOnly "token" cookie that
// login sets; an Authorization "Bearer" header is accepted as a
// fallback for non-browser clients.  Requests without a valid token
// are rejected with 401.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if ck, err := c.Cookie("token"); err == nil && ck.Value != "" {
				raw = ck.Value
			} else if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw = strings.TrimPrefix(auth, "Bearer ")
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			ident, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity stored by Session.  The second
// return value is false when the middleware did not run, which in a
// correctly wired router only happens on unprotected routes.
func IdentityFrom(c echo.Context) (utils.Identity, bool) {
	ident, ok := c.Get(identityKey).(utils.Identity)
	return ident, ok
}
