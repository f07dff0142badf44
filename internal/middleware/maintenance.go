package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/store"
)

// Maintenance returns a middleware that blocks callers with role "user"
// while the maintenance flag is set.  Admins and owners always pass, so
// they can keep managing the club (and clear the flag) during downtime.
// The settings are reloaded from the store on every request; the flag
// takes effect immediately after an owner flips it.
func Maintenance(st *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := IdentityFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			if ident.Role == model.RoleUser {
				doc, err := st.Load()
				if err != nil {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
				}
				if doc.Settings.MaintenanceMode {
					return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "system under maintenance"})
				}
			}
			return next(c)
		}
	}
}
