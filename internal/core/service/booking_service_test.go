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

type bookingFixture struct {
	svc      *BookingService
	bookings *stubBookingRepo
	cars     *stubCarRepo
	users    *stubUserRepo
	audit    *stubAuditSink
	userID   string
	carID    string
}

func newBookingFixture(t *testing.T, strict bool) *bookingFixture {
	t.Helper()

	users := newStubUserRepo()
	cars := newStubCarRepo()
	bookings := newStubBookingRepo()
	audit := &stubAuditSink{}

	user, err := users.Create(context.Background(), &domain.User{Username: "alice", Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	car := cars.seed(domain.Car{Brand: "Toyota", Model: "Corolla", Year: 2021, PricePerDay: 45, Available: true})

	return &bookingFixture{
		svc:      NewBookingService(bookings, cars, users, audit, strict, zerolog.Nop()),
		bookings: bookings,
		cars:     cars,
		users:    users,
		audit:    audit,
		userID:   user.ID,
		carID:    car.ID,
	}
}

func be(input string) domain.Date {
	d, err := domain.ParseDate(input)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBookingService_Create_HappyPath(t *testing.T) {
	f := newBookingFixture(t, false)

	booking, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-03"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.ID == "" {
		t.Fatalf("expected assigned booking id")
	}
	if booking.UserID != f.userID || booking.CarID != f.carID {
		t.Errorf("unexpected references: %+v", booking)
	}
	if len(f.bookings.bookings) != 1 {
		t.Errorf("expected exactly one persisted booking, got %d", len(f.bookings.bookings))
	}
	if len(f.audit.events) != 1 || f.audit.events[0].Action != domain.BookingCreated {
		t.Errorf("expected created audit event, got %+v", f.audit.events)
	}
}

func TestBookingService_Create_MissingCar(t *testing.T) {
	f := newBookingFixture(t, false)

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     "nope",
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-03"),
	})
	if !errors.Is(err, domain.ErrCarNotFound) {
		t.Fatalf("expected ErrCarNotFound, got %v", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Errorf("expected nothing persisted")
	}
	if len(f.audit.events) != 0 {
		t.Errorf("expected no audit event")
	}
}

func TestBookingService_Create_MissingUser(t *testing.T) {
	f := newBookingFixture(t, false)

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    "nope",
		CarID:     f.carID,
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-03"),
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Errorf("expected nothing persisted")
	}
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	f := newBookingFixture(t, false)

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-03"),
		EndDate:   be("2025-06-01"),
	})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Errorf("expected nothing persisted")
	}
}

func TestBookingService_Create_SingleDay(t *testing.T) {
	f := newBookingFixture(t, false)

	// start == end is a valid one-day rental.
	if _, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-01"),
	}); err != nil {
		t.Fatalf("expected single-day booking to succeed, got %v", err)
	}
}

func TestBookingService_Create_StrictAvailability(t *testing.T) {
	f := newBookingFixture(t, true)

	if _, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-05"),
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-04"),
		EndDate:   be("2025-06-08"),
	})
	if !errors.Is(err, domain.ErrCarUnavailable) {
		t.Fatalf("expected ErrCarUnavailable, got %v", err)
	}
	if len(f.bookings.bookings) != 1 {
		t.Errorf("expected only the first booking persisted, got %d", len(f.bookings.bookings))
	}

	// Adjacent but non-overlapping dates are fine.
	if _, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-06"),
		EndDate:   be("2025-06-08"),
	}); err != nil {
		t.Fatalf("non-overlapping booking failed: %v", err)
	}
}

func TestBookingService_Create_OverlapAllowedByDefault(t *testing.T) {
	f := newBookingFixture(t, false)

	for i := 0; i < 2; i++ {
		if _, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
			UserID:    f.userID,
			CarID:     f.carID,
			StartDate: be("2025-06-01"),
			EndDate:   be("2025-06-05"),
		}); err != nil {
			t.Fatalf("booking %d failed: %v", i, err)
		}
	}
	if len(f.bookings.bookings) != 2 {
		t.Errorf("expected both overlapping bookings persisted without strict mode")
	}
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	f := newBookingFixture(t, false)

	booking, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-03"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := f.svc.Cancel(context.Background(), booking.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Errorf("expected booking removed")
	}

	// Cancelling again, and cancelling an id that never existed, is a no-op.
	if err := f.svc.Cancel(context.Background(), booking.ID); err != nil {
		t.Fatalf("second cancel raised: %v", err)
	}
	if err := f.svc.Cancel(context.Background(), "never-existed"); err != nil {
		t.Fatalf("cancel of unknown id raised: %v", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Errorf("store changed by no-op cancels")
	}
}

func TestBookingService_Lists(t *testing.T) {
	f := newBookingFixture(t, false)

	other, _ := f.users.Create(context.Background(), &domain.User{Username: "bob", Role: domain.RoleCustomer})
	secondCar := f.cars.seed(domain.Car{Brand: "Honda", Model: "Civic", Year: 2020, PricePerDay: 40, Available: true})

	mk := func(userID, carID string) {
		t.Helper()
		if _, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
			UserID:    userID,
			CarID:     carID,
			StartDate: be("2025-07-01"),
			EndDate:   be("2025-07-02"),
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	mk(f.userID, f.carID)
	mk(f.userID, secondCar.ID)
	mk(other.ID, f.carID)

	byUser, err := f.svc.ListByUser(context.Background(), f.userID)
	if err != nil || len(byUser) != 2 {
		t.Errorf("ListByUser: want 2, got %d (err %v)", len(byUser), err)
	}
	byCar, err := f.svc.ListByCar(context.Background(), f.carID)
	if err != nil || len(byCar) != 2 {
		t.Errorf("ListByCar: want 2, got %d (err %v)", len(byCar), err)
	}
	all, err := f.svc.ListAll(context.Background())
	if err != nil || len(all) != 3 {
		t.Errorf("ListAll: want 3, got %d (err %v)", len(all), err)
	}
}

func TestBookingService_Create_SetsCreatedAt(t *testing.T) {
	f := newBookingFixture(t, false)

	before := time.Now().Add(-time.Second)
	booking, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		UserID:    f.userID,
		CarID:     f.carID,
		StartDate: be("2025-06-01"),
		EndDate:   be("2025-06-03"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.CreatedAt.Before(before) {
		t.Errorf("created_at not set: %v", booking.CreatedAt)
	}
}
