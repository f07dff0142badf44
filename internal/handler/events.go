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

// EventHandler implements event CRUD.  Listing requires any session
// (maintenance-gated for role "user"); create/update/delete are
// restricted to admin and owner by the router.
type EventHandler struct {
	Store *store.Store
}

func NewEventHandler(st *store.Store) *EventHandler {
	return &EventHandler{Store: st}
}

type createEventReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
}

// eventPatch uses pointer fields so updates only touch supplied fields.
type eventPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
}

// List returns all events.
func (h *EventHandler) List(c echo.Context) error {
	doc, err := h.Store.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, doc.Events)
}

// Create adds a new event stamped with the caller and creation time.
func (h *EventHandler) Create(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be non-negative"})
	}
	if req.Capacity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be at least 1"})
	}

	event := model.Event{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Price:       req.Price,
		Capacity:    req.Capacity,
		CreatedBy:   ident.ID,
		CreatedAt:   time.Now().UTC(),
	}
	err := h.Store.Update(func(doc *model.Document) error {
		doc.Events = append(doc.Events, event)
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "event": event})
}

// Update shallow-merges the supplied fields into an existing event.
func (h *EventHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var patch eventPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if patch.Price != nil && *patch.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be non-negative"})
	}
	if patch.Capacity != nil && *patch.Capacity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be at least 1"})
	}

	var updated model.Event
	err := h.Store.Update(func(doc *model.Document) error {
		ev := doc.FindEvent(id)
		if ev == nil {
			return store.ErrEventNotFound
		}
		if patch.Name != nil {
			ev.Name = *patch.Name
		}
		if patch.Description != nil {
			ev.Description = *patch.Description
		}
		if patch.Date != nil {
			ev.Date = *patch.Date
		}
		if patch.Time != nil {
			ev.Time = *patch.Time
		}
		if patch.Price != nil {
			ev.Price = *patch.Price
		}
		if patch.Capacity != nil {
			ev.Capacity = *patch.Capacity
		}
		updated = *ev
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "event": updated})
}

// Delete removes an event.  Bookings referencing it are kept; listings
// resolve the dangling reference to "Unknown Event".
func (h *EventHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	err := h.Store.Update(func(doc *model.Document) error {
		for i := range doc.Events {
			if doc.Events[i].ID == id {
				doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
				return nil
			}
		}
		return store.ErrEventNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
