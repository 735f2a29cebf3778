package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/ports"
)

const auditCollection = "booking_events"

// AuditRepository persists booking events to the booking_events audit collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.BookingEvent) error {
	doc := bson.M{
		"booking_id":  event.BookingID,
		"action":      string(event.Action),
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.UserID != "" {
		doc["user_id"] = event.UserID
	}
	if event.CarID != "" {
		doc["car_id"] = event.CarID
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
