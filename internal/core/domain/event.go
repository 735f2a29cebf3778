package domain

import "time"

// BookingAction identifies what happened to a booking.
type BookingAction string

const (
	BookingCreated   BookingAction = "created"
	BookingCancelled BookingAction = "cancelled"
)

// BookingEvent is an audit record of a booking mutation, written
// asynchronously to the audit trail.
type BookingEvent struct {
	BookingID string
	UserID    string
	CarID     string
	Action    BookingAction
	Timestamp time.Time
}
