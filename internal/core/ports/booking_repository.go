package ports

import (
	"context"

	"github.com/autopark/rental-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	FindByCar(ctx context.Context, carID string) ([]*domain.Booking, error)
	FindAll(ctx context.Context) ([]*domain.Booking, error)
	// FindOverlapping returns bookings for carID whose date range intersects
	// [start, end] (inclusive on both ends).
	FindOverlapping(ctx context.Context, carID string, start, end domain.Date) ([]*domain.Booking, error)
	// Delete removes a booking by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}

// AuditRepository persists booking events to the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
}
