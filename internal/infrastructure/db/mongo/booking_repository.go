package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autopark/rental-system/internal/core/domain"
)

const bookingsCollection = "bookings"

// BookingRepository implements ports.BookingRepository on MongoDB. Dates are
// stored as ISO calendar-date strings, which sort and compare correctly with
// plain string operators.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	CarID     string             `bson:"car_id"`
	StartDate string             `bson:"start_date"`
	EndDate   string             `bson:"end_date"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	doc := mongoBooking{
		UserID:    booking.UserID,
		CarID:     booking.CarID,
		StartDate: booking.StartDate.String(),
		EndDate:   booking.EndDate.String(),
		CreatedAt: booking.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *booking
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var mb mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain()
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *BookingRepository) FindByCar(ctx context.Context, carID string) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{"car_id": carID})
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

// FindOverlapping returns bookings for carID intersecting [start, end].
// Two inclusive ranges overlap when each starts no later than the other ends.
func (r *BookingRepository) FindOverlapping(ctx context.Context, carID string, start, end domain.Date) ([]*domain.Booking, error) {
	return r.find(ctx, bson.M{
		"car_id":     carID,
		"start_date": bson.M{"$lte": end.String()},
		"end_date":   bson.M{"$gte": start.String()},
	})
}

// Delete removes a booking by id. An absent or malformed id is not an error.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes backing the list projections and
// the overlap query.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "car_id", Value: 1}, {Key: "start_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		b, err := mb.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, cur.Err()
}

func (mb mongoBooking) toDomain() (*domain.Booking, error) {
	start, err := domain.ParseDate(mb.StartDate)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", mb.ID.Hex(), err)
	}
	end, err := domain.ParseDate(mb.EndDate)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", mb.ID.Hex(), err)
	}

	return &domain.Booking{
		ID:        mb.ID.Hex(),
		UserID:    mb.UserID,
		CarID:     mb.CarID,
		StartDate: start,
		EndDate:   end,
		CreatedAt: mb.CreatedAt,
	}, nil
}
