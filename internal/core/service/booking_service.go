package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/ports"
)

// AuditSink receives booking events for asynchronous recording.
type AuditSink interface {
	Enqueue(event domain.BookingEvent)
}

// BookingService implements reservation use cases. Referential integrity is
// enforced here, not in the store: a booking is only persisted after both the
// car and the user resolve.
type BookingService struct {
	bookings ports.BookingRepository
	cars     ports.CarRepository
	users    ports.UserRepository
	audit    AuditSink
	// strictAvailability enables the overlap check on creation. Off by
	// default: double-booking is allowed unless the operator opts in.
	strictAvailability bool
	log                zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	cars ports.CarRepository,
	users ports.UserRepository,
	audit AuditSink,
	strictAvailability bool,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:           bookings,
		cars:               cars,
		users:              users,
		audit:              audit,
		strictAvailability: strictAvailability,
		log:                log,
	}
}

// Create validates the date range, resolves the car and then the user, and
// persists the booking. On any failure nothing is written.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.StartDate.After(input.EndDate.Time) {
		return nil, domain.ErrInvalidDateRange
	}

	car, err := s.cars.FindByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if s.strictAvailability {
		existing, err := s.bookings.FindOverlapping(ctx, car.ID, input.StartDate, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("create booking: overlap check: %w", err)
		}
		if len(existing) > 0 {
			return nil, domain.ErrCarUnavailable
		}
	}

	booking := &domain.Booking{
		UserID:    user.ID,
		CarID:     car.ID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.log.Error().Err(err).Str("car_id", car.ID).Msg("failed to create booking")
		return nil, err
	}

	s.audit.Enqueue(domain.BookingEvent{
		BookingID: created.ID,
		UserID:    created.UserID,
		CarID:     created.CarID,
		Action:    domain.BookingCreated,
		Timestamp: created.CreatedAt,
	})

	s.log.Info().
		Str("booking_id", created.ID).
		Str("user_id", created.UserID).
		Str("car_id", created.CarID).
		Msg("booking created")

	return created, nil
}

// Cancel deletes a booking by id. Cancelling an already-absent id is a silent
// no-op; the operation is idempotent in effect.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.audit.Enqueue(domain.BookingEvent{
		BookingID: bookingID,
		Action:    domain.BookingCancelled,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("booking_id", bookingID).Msg("booking cancelled")
	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookings.FindByUser(ctx, userID)
}

func (s *BookingService) ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error) {
	return s.bookings.FindByCar(ctx, carID)
}

func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.FindAll(ctx)
}
