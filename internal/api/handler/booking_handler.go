package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autopark/rental-system/internal/api/metrics"
	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for reservations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// A dangling user or car reference returns 400 with a message naming the
// missing entity: the request body, not the URL, is what is wrong.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be a calendar date (2006-01-02)")
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_date must be a calendar date (2006-01-02)")
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:    req.UserID,
		CarID:     req.CarID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "car not found")
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "user not found")
		}
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// Cancel handles DELETE /api/bookings/:id. Cancelling an absent id still
// returns 200: the operation is idempotent in effect.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200 {object}  confirmationResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	if err := h.service.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.BookingsCancelledTotal.Inc()
	return c.JSON(http.StatusOK, confirmationResponse{Message: "booking cancelled"})
}

// ListAll handles GET /api/bookings (admin only).
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  bookingResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingListResponse(bookings))
}

// ListByUser handles GET /api/bookings/user/:userId.
//
// @Summary      List bookings for a user
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "User id"
// @Success      200 {array}  bookingResponse
// @Router       /api/bookings/user/{userId} [get]
func (h *BookingHandler) ListByUser(c echo.Context) error {
	bookings, err := h.service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingListResponse(bookings))
}

// ListByCar handles GET /api/bookings/car/:carId.
//
// @Summary      List bookings for a car
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        carId  path  string  true  "Car id"
// @Success      200 {array}  bookingResponse
// @Router       /api/bookings/car/{carId} [get]
func (h *BookingHandler) ListByCar(c echo.Context) error {
	bookings, err := h.service.ListByCar(c.Request().Context(), c.Param("carId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingListResponse(bookings))
}
