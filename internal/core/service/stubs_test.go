package service

import (
	"context"
	"fmt"

	"github.com/autopark/rental-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User // by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type stubCarRepo struct {
	seq  int
	cars map[string]*domain.Car
}

func newStubCarRepo() *stubCarRepo {
	return &stubCarRepo{cars: make(map[string]*domain.Car)}
}

func (r *stubCarRepo) seed(car domain.Car) *domain.Car {
	r.seq++
	car.ID = fmt.Sprintf("c%d", r.seq)
	stored := car
	r.cars[car.ID] = &stored
	return &car
}

func (r *stubCarRepo) Create(_ context.Context, car *domain.Car) (*domain.Car, error) {
	return r.seed(*car), nil
}

func (r *stubCarRepo) FindByID(_ context.Context, id string) (*domain.Car, error) {
	c, ok := r.cars[id]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCarRepo) FindAll(_ context.Context) ([]*domain.Car, error) {
	out := make([]*domain.Car, 0, len(r.cars))
	for _, c := range r.cars {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCarRepo) FindAvailable(_ context.Context) ([]*domain.Car, error) {
	var out []*domain.Car
	for _, c := range r.cars {
		if c.Available {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCarRepo) Delete(_ context.Context, id string) error {
	delete(r.cars, id)
	return nil
}

type stubBookingRepo struct {
	seq      int
	bookings map[string]*domain.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.seq++
	created := *b
	created.ID = fmt.Sprintf("b%d", r.seq)
	stored := created
	r.bookings[created.ID] = &stored
	return &created, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) FindByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindByCar(_ context.Context, carID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CarID == carID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindAll(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBookingRepo) FindOverlapping(_ context.Context, carID string, start, end domain.Date) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CarID == carID && b.Overlaps(start, end) {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

type stubAuditSink struct {
	events []domain.BookingEvent
}

func (s *stubAuditSink) Enqueue(event domain.BookingEvent) {
	s.events = append(s.events, event)
}

type stubThrottle struct {
	blocked  bool
	allowErr error
	failures []string
	resets   []string
}

func (t *stubThrottle) Allow(_ context.Context, username string) (bool, error) {
	if t.allowErr != nil {
		return false, t.allowErr
	}
	return !t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures = append(t.failures, username)
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	t.resets = append(t.resets, username)
	return nil
}
