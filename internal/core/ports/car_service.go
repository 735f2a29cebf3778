package ports

import (
	"context"

	"github.com/autopark/rental-system/internal/core/domain"
)

// CarService defines fleet operations.
type CarService interface {
	List(ctx context.Context) ([]*domain.Car, error)
	ListAvailable(ctx context.Context) ([]*domain.Car, error)
	Get(ctx context.Context, id string) (*domain.Car, error)
	Add(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Delete(ctx context.Context, id string) error
}

// UserService defines administrative user operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Search(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
