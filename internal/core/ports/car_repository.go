package ports

import (
	"context"

	"github.com/autopark/rental-system/internal/core/domain"
)

// CarRepository defines persistence operations for the fleet.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	FindAll(ctx context.Context) ([]*domain.Car, error)
	// FindAvailable returns cars whose availability flag is set.
	FindAvailable(ctx context.Context) ([]*domain.Car, error)
	// Delete removes a car by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
