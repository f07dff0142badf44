// Package store persists the whole application state as a single JSON
// document on disk.  This file defines sentinel error values shared
// across store operations.  Handlers compare against them with
// errors.Is and translate them into HTTP status codes, the same way
// repository sentinels are handled elsewhere in the codebase.
package store

import "errors"

// ErrStorage wraps any I/O or decoding failure of the backing file.
// It is fatal for the current operation; no repair is attempted.
var ErrStorage = errors.New("storage error")

// ErrUserNotFound is returned when a user id resolves to nothing.
var ErrUserNotFound = errors.New("user not found")

// ErrEventNotFound is returned when an event id resolves to nothing.
var ErrEventNotFound = errors.New("event not found")

// ErrBookingNotFound is returned when a booking id resolves to nothing.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNotificationNotFound is returned when a notification id resolves
// to nothing or the notification belongs to another user.
var ErrNotificationNotFound = errors.New("notification not found")

// ErrUsernameTaken is returned when creating a user with a username
// that already exists.  Handlers translate this into HTTP 409.
var ErrUsernameTaken = errors.New("username already exists")

// ErrCapacityExceeded is returned when a booking would push the ticket
// sum of an event's non-cancelled bookings past its capacity.
var ErrCapacityExceeded = errors.New("not enough capacity")
