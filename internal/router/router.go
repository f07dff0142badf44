package router // package router wires HTTP routes to handlers and middleware chains

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/config"
	"github.com/iliyamo/club-manager/internal/handler"
	"github.com/iliyamo/club-manager/internal/middleware"
	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/store"
)

// Register sets up every route of the API on the provided Echo
// instance.  The guard order on protected routes is always session →
// role → maintenance: a caller must be authenticated before roles mean
// anything, and privileged roles skip the maintenance gate entirely.
func Register(e *echo.Echo, cfg config.Config, st *store.Store) {
	auth := handler.NewAuthHandler(cfg, st)
	events := handler.NewEventHandler(st)
	bookings := handler.NewBookingHandler(st)
	notifications := handler.NewNotificationHandler(st)
	users := handler.NewUserHandler(cfg, st)
	settings := handler.NewSettingsHandler(st)

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.POST("/login", auth.Login)
	api.POST("/logout", auth.Logout)

	// Everything below requires a valid session token.
	session := api.Group("", middleware.Session(cfg.JWTSecret))
	session.GET("/me", auth.Me)

	owner := middleware.RequireRole(model.RoleOwner)
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleOwner)
	maintenance := middleware.Maintenance(st)

	session.GET("/settings", settings.Get, owner)
	session.PUT("/settings", settings.Update, owner)

	session.GET("/events", events.List, maintenance)
	session.POST("/events", events.Create, staff)
	session.PUT("/events/:id", events.Update, staff)
	session.DELETE("/events/:id", events.Delete, staff)

	session.GET("/bookings", bookings.List, maintenance)
	session.POST("/bookings", bookings.Create, maintenance)
	session.DELETE("/bookings/:id", bookings.Cancel)

	session.GET("/notifications", notifications.List, maintenance)
	session.POST("/notifications", notifications.Broadcast, staff)
	session.PUT("/notifications/:id/read", notifications.MarkRead)

	session.GET("/users", users.List, owner)
	session.POST("/users", users.Create, owner)
	session.DELETE("/users/:id", users.Delete, owner)
}
