package model

import "time"

// Booking status values.  A cancelled booking is never deleted; the
// status flip is what frees its tickets for future bookings.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// PaymentPaid is the only payment status the system knows about.  There
// is no real payment processing; bookings are marked paid at creation.
const PaymentPaid = "paid"

// Booking links a user to an event for a number of tickets.  TotalPrice
// is snapshotted from the event price at creation time and is never
// recomputed, so later event price changes do not affect existing
// bookings.
//
// Fields:
//  ID            – unique identifier (UUID string).
//  UserID        – id of the booking user.
//  EventID       – id of the booked event.
//  Tickets       – number of tickets, at least 1.
//  TotalPrice    – event price × tickets at creation time.
//  Status        – confirmed or cancelled.
//  PaymentStatus – always "paid".
//  CreatedAt     – creation timestamp.
type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	EventID       string    `json:"eventId"`
	Tickets       int       `json:"tickets"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
