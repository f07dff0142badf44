package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/middleware"
	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/store"
)

// NotificationHandler implements per-user notification listing,
// admin/owner broadcast fan-out and read tracking.
type NotificationHandler struct {
	Store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{Store: st}
}

type broadcastReq struct {
	Message string   `json:"message"`
	UserIDs []string `json:"userIds"`
}

// List returns the caller's notifications only, regardless of role.
func (h *NotificationHandler) List(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	doc, err := h.Store.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	own := make([]model.Notification, 0)
	for _, n := range doc.Notifications {
		if n.UserID == ident.ID {
			own = append(own, n)
		}
	}
	return c.JSON(http.StatusOK, own)
}

// Broadcast creates one unread notification per target user, all
// sharing the same message and timestamp.  When no explicit userIds are
// supplied the broadcast fans out to every user with role "user";
// admins and owners are not targeted implicitly.
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req broadcastReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}

	count := 0
	err := h.Store.Update(func(doc *model.Document) error {
		targets := req.UserIDs
		if len(targets) == 0 {
			for _, u := range doc.Users {
				if u.Role == model.RoleUser {
					targets = append(targets, u.ID)
				}
			}
		}
		now := time.Now().UTC()
		for _, userID := range targets {
			doc.Notifications = append(doc.Notifications, model.Notification{
				ID:        uuid.NewString(),
				UserID:    userID,
				Message:   req.Message,
				Read:      false,
				CreatedAt: now,
			})
		}
		count = len(targets)
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "count": count})
}

// MarkRead marks one of the caller's notifications as read.  A
// notification that does not exist or belongs to someone else is
// reported as not found, without revealing which.  Marking an
// already-read notification is a no-op success.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	id := c.Param("id")

	err := h.Store.Update(func(doc *model.Document) error {
		n := doc.FindNotification(id)
		if n == nil || n.UserID != ident.ID {
			return store.ErrNotificationNotFound
		}
		n.Read = true
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
