package domain

import (
	"errors"
	"time"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// Booking is a reservation of a car by a user for an inclusive date range.
// It holds the identifiers of the referenced user and car, never live handles;
// both must resolve to existing records at creation time.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CarID     string    `json:"car_id"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Overlaps reports whether the booking's date range intersects [start, end].
// Ranges are inclusive on both ends.
func (b Booking) Overlaps(start, end Date) bool {
	return !b.EndDate.Before(start.Time) && !b.StartDate.After(end.Time)
}
