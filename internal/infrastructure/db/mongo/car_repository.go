package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autopark/rental-system/internal/core/domain"
)

const carsCollection = "cars"

// CarRepository implements ports.CarRepository on MongoDB.
type CarRepository struct {
	coll *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{coll: db.Collection(carsCollection)}
}

type mongoCar struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Brand       string             `bson:"brand"`
	Model       string             `bson:"model"`
	Year        int                `bson:"year"`
	PricePerDay float64            `bson:"price_per_day"`
	Available   bool               `bson:"available"`
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	doc := mongoCar{
		Brand:       car.Brand,
		Model:       car.Model,
		Year:        car.Year,
		PricePerDay: car.PricePerDay,
		Available:   car.Available,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert car: %w", err)
	}

	created := *car
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}

	var mc mongoCar
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CarRepository) FindAll(ctx context.Context) ([]*domain.Car, error) {
	return r.find(ctx, bson.M{})
}

func (r *CarRepository) FindAvailable(ctx context.Context) ([]*domain.Car, error) {
	return r.find(ctx, bson.M{"available": true})
}

// Delete removes a car by id. An absent or malformed id is not an error.
func (r *CarRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

func (r *CarRepository) find(ctx context.Context, filter bson.M) ([]*domain.Car, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer cur.Close(ctx)

	var cars []*domain.Car
	for cur.Next(ctx) {
		var mc mongoCar
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode car: %w", err)
		}
		cars = append(cars, mc.toDomain())
	}
	return cars, cur.Err()
}

func (mc mongoCar) toDomain() *domain.Car {
	return &domain.Car{
		ID:          mc.ID.Hex(),
		Brand:       mc.Brand,
		Model:       mc.Model,
		Year:        mc.Year,
		PricePerDay: mc.PricePerDay,
		Available:   mc.Available,
	}
}
