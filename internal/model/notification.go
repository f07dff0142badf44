package model

import "time"

// Notification is a message addressed to a single user.  Broadcasts
// fan out into one record per recipient.  Notifications are only ever
// marked read by their owner; they are never deleted.
//
// Fields:
//  ID        – unique identifier (UUID string).
//  UserID    – recipient user id.
//  Message   – message text.
//  Read      – whether the owner has marked the notification read.
//  CreatedAt – creation timestamp.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
