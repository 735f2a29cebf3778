package handler

import (
	"time"

	"github.com/autopark/rental-system/internal/core/domain"
)

type createBookingRequest struct {
	UserID    string `json:"user_id"    validate:"required"`
	CarID     string `json:"car_id"     validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type bookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CarID     string    `json:"car_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

type confirmationResponse struct {
	Message string `json:"message"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		CarID:     b.CarID,
		StartDate: b.StartDate.String(),
		EndDate:   b.EndDate.String(),
		CreatedAt: b.CreatedAt.UTC(),
	}
}

func toBookingListResponse(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingResponse(b)
	}
	return out
}
