package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/ports"
)

// CarService implements fleet operations. Mostly pass-through to the
// repository; the booking core only consumes Get.
type CarService struct {
	cars ports.CarRepository
	log  zerolog.Logger
}

func NewCarService(cars ports.CarRepository, log zerolog.Logger) *CarService {
	return &CarService{cars: cars, log: log}
}

func (s *CarService) List(ctx context.Context) ([]*domain.Car, error) {
	return s.cars.FindAll(ctx)
}

func (s *CarService) ListAvailable(ctx context.Context) ([]*domain.Car, error) {
	return s.cars.FindAvailable(ctx)
}

func (s *CarService) Get(ctx context.Context, id string) (*domain.Car, error) {
	return s.cars.FindByID(ctx, id)
}

func (s *CarService) Add(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	created, err := s.cars.Create(ctx, car)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("car_id", created.ID).Str("brand", created.Brand).Str("model", created.Model).Msg("car added")
	return created, nil
}

// Delete removes a car by id; deleting an absent id is a no-op.
func (s *CarService) Delete(ctx context.Context, id string) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("car_id", id).Msg("car deleted")
	return nil
}
