package model

import "time"

// Event is a bookable club event with a finite ticket capacity.
//
// Fields:
//  ID          – unique identifier (UUID string).
//  Name        – event title.
//  Description – free-form description.
//  Date        – event date as entered (e.g. "2026-09-15").
//  Time        – event time as entered (e.g. "19:00").
//  Price       – price per ticket, non-negative.
//  Capacity    – maximum ticket count that may be sold, at least 1.
//  CreatedBy   – id of the admin/owner who created the event.
//  CreatedAt   – creation timestamp.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
