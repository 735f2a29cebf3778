package ports

import (
	"context"

	"github.com/autopark/rental-system/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking.
type CreateBookingInput struct {
	UserID    string
	CarID     string
	StartDate domain.Date
	EndDate   domain.Date
}

// BookingService defines use-case operations for reservations.
type BookingService interface {
	// Create persists a booking after resolving both referenced entities.
	// A booking is never persisted with a dangling reference.
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// Cancel deletes a booking by id. Cancelling an absent id is a no-op.
	Cancel(ctx context.Context, bookingID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}
