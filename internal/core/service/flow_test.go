package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/ports"
)

// TestRentalFlow covers the full register → login → book → list → cancel
// journey across the real services wired over in-memory stores.
func TestRentalFlow(t *testing.T) {
	ctx := context.Background()

	users := newStubUserRepo()
	cars := newStubCarRepo()
	bookings := newStubBookingRepo()
	audit := &stubAuditSink{}

	tokens := NewTokenService("flow-secret", 24*time.Hour)
	auth := NewAuthService(users, tokens, &stubThrottle{}, zerolog.Nop())
	reservations := NewBookingService(bookings, cars, users, audit, false, zerolog.Nop())

	car := cars.seed(domain.Car{Brand: "Skoda", Model: "Octavia", Year: 2022, PricePerDay: 55, Available: true})

	// Register and log in.
	if _, err := auth.Register(ctx, "alice", "secret123", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, alice, err := auth.Login(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("token validate: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != domain.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// Book the car.
	start, _ := domain.ParseDate("2025-06-01")
	end, _ := domain.ParseDate("2025-06-03")
	booking, err := reservations.Create(ctx, ports.CreateBookingInput{
		UserID:    alice.ID,
		CarID:     car.ID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	mine, err := reservations.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != booking.ID {
		t.Fatalf("expected exactly the created booking, got %+v", mine)
	}

	// Cancel and verify the list is empty again.
	if err := reservations.Cancel(ctx, booking.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	mine, err = reservations.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list after cancel: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected no bookings after cancel, got %+v", mine)
	}
}

func TestRentalFlow_WrongPassword(t *testing.T) {
	ctx := context.Background()

	users := newStubUserRepo()
	auth := NewAuthService(users, NewTokenService("flow-secret", time.Hour), &stubThrottle{}, zerolog.Nop())

	if _, err := auth.Register(ctx, "alice", "secret123", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, _, err := auth.Login(ctx, "alice", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatalf("no token must be issued on failed login")
	}
}
