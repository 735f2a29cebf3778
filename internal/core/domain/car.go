package domain

import "errors"

var (
	ErrCarNotFound    = errors.New("car not found")
	ErrCarUnavailable = errors.New("car already booked for the requested dates")
)

// Car is a rentable vehicle in the fleet. The core only reads cars; fleet
// mutation happens through the admin endpoints.
type Car struct {
	ID          string  `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"price_per_day"`
	Available   bool    `json:"available"`
}
