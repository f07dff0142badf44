package model

// Document is the entire persisted application state.  The store reads
// and writes it wholesale; there is no partial update path.  All
// cross-references between entities are by id and resolved by the
// lookup helpers below at read time.
type Document struct {
	Users         []User         `json:"users"`
	Events        []Event        `json:"events"`
	Bookings      []Booking      `json:"bookings"`
	Notifications []Notification `json:"notifications"`
	Settings      Settings       `json:"settings"`
}

// FindUser returns a pointer into the Users slice for the given id, or
// nil when absent.
func (d *Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByUsername returns the user with the given login name, or nil.
func (d *Document) FindUserByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// FindEvent returns a pointer into the Events slice for the given id,
// or nil when absent.
func (d *Document) FindEvent(id string) *Event {
	for i := range d.Events {
		if d.Events[i].ID == id {
			return &d.Events[i]
		}
	}
	return nil
}

// FindBooking returns a pointer into the Bookings slice for the given
// id, or nil when absent.
func (d *Document) FindBooking(id string) *Booking {
	for i := range d.Bookings {
		if d.Bookings[i].ID == id {
			return &d.Bookings[i]
		}
	}
	return nil
}

// FindNotification returns a pointer into the Notifications slice for
// the given id, or nil when absent.
func (d *Document) FindNotification(id string) *Notification {
	for i := range d.Notifications {
		if d.Notifications[i].ID == id {
			return &d.Notifications[i]
		}
	}
	return nil
}

// BookedTickets sums the tickets of all non-cancelled bookings for the
// given event.  Cancelled bookings are excluded, which is how a
// cancellation frees capacity without being deleted.
func (d *Document) BookedTickets(eventID string) int {
	total := 0
	for i := range d.Bookings {
		b := &d.Bookings[i]
		if b.EventID == eventID && b.Status != BookingCancelled {
			total += b.Tickets
		}
	}
	return total
}
