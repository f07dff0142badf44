package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/middleware"
	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/store"
)

// BookingHandler implements booking creation, cancellation and listing.
// Create is the one capacity-sensitive operation in the system: the
// existence check, the capacity sum and the append all happen inside a
// single Store.Update, so two concurrent requests for the last ticket
// cannot both pass the check.
type BookingHandler struct {
	Store *store.Store
}

func NewBookingHandler(st *store.Store) *BookingHandler {
	return &BookingHandler{Store: st}
}

type createBookingReq struct {
	EventID string `json:"eventId"`
	Tickets int    `json:"tickets"`
}

// bookingView is a booking enriched with the resolved event and user
// names for listings.  Dangling references resolve to placeholder
// names instead of failing the whole listing.
type bookingView struct {
	model.Booking
	EventName string `json:"eventName"`
	UserName  string `json:"userName"`
}

// List returns bookings scoped by role: "user" callers see only their
// own, admin and owner see all.
func (h *BookingHandler) List(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	doc, err := h.Store.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}

	views := make([]bookingView, 0, len(doc.Bookings))
	for _, b := range doc.Bookings {
		if ident.Role == model.RoleUser && b.UserID != ident.ID {
			continue
		}
		view := bookingView{Booking: b, EventName: "Unknown Event", UserName: "Unknown User"}
		if ev := doc.FindEvent(b.EventID); ev != nil {
			view.EventName = ev.Name
		}
		if u := doc.FindUser(b.UserID); u != nil {
			view.UserName = u.Name
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, views)
}

// Create books tickets for the caller.  On success the booking and its
// confirmation notification are persisted in the same document write.
func (h *BookingHandler) Create(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Tickets < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tickets must be at least 1"})
	}

	var created model.Booking
	err := h.Store.Update(func(doc *model.Document) error {
		ev := doc.FindEvent(req.EventID)
		if ev == nil {
			return store.ErrEventNotFound
		}
		if doc.BookedTickets(ev.ID)+req.Tickets > ev.Capacity {
			return store.ErrCapacityExceeded
		}

		now := time.Now().UTC()
		created = model.Booking{
			ID:            uuid.NewString(),
			UserID:        ident.ID,
			EventID:       ev.ID,
			Tickets:       req.Tickets,
			TotalPrice:    ev.Price * float64(req.Tickets),
			Status:        model.BookingConfirmed,
			PaymentStatus: model.PaymentPaid,
			CreatedAt:     now,
		}
		doc.Bookings = append(doc.Bookings, created)
		doc.Notifications = append(doc.Notifications, model.Notification{
			ID:        uuid.NewString(),
			UserID:    ident.ID,
			Message:   fmt.Sprintf("Booking confirmed for %s - %d ticket(s)", ev.Name, req.Tickets),
			Read:      false,
			CreatedAt: now,
		})
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, store.ErrCapacityExceeded):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "not enough capacity"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "booking": created})
}

// Cancel flips a booking to cancelled.  The record is kept: ticket
// count and total price stay intact for history, and the status flip is
// what returns the tickets to the event's capacity.  A "user" caller
// may cancel only their own booking; admin and owner may cancel any.
func (h *BookingHandler) Cancel(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	id := c.Param("id")

	err := h.Store.Update(func(doc *model.Document) error {
		b := doc.FindBooking(id)
		if b == nil {
			return store.ErrBookingNotFound
		}
		if ident.Role == model.RoleUser && b.UserID != ident.ID {
			return errForbidden
		}
		b.Status = model.BookingCancelled
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, errForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// errForbidden signals an ownership violation detected inside a store
// update, where the HTTP layer is out of reach.
var errForbidden = errors.New("forbidden")
