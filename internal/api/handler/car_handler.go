package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autopark/rental-system/internal/core/domain"
	"github.com/autopark/rental-system/internal/core/ports"
)

// CarHandler handles HTTP requests for the fleet.
type CarHandler struct {
	service ports.CarService
}

func NewCarHandler(service ports.CarService) *CarHandler {
	return &CarHandler{service: service}
}

type createCarRequest struct {
	Brand       string  `json:"brand"         validate:"required"`
	Model       string  `json:"model"         validate:"required"`
	Year        int     `json:"year"          validate:"required,gt=1900"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Available   bool    `json:"available"`
}

// List handles GET /api/cars.
//
// @Summary      List all cars
// @Tags         cars
// @Produce      json
// @Success      200 {array}  domain.Car
// @Router       /api/cars [get]
func (h *CarHandler) List(c echo.Context) error {
	cars, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// ListAvailable handles GET /api/cars/available.
//
// @Summary      List available cars
// @Tags         cars
// @Produce      json
// @Success      200 {array}  domain.Car
// @Router       /api/cars/available [get]
func (h *CarHandler) ListAvailable(c echo.Context) error {
	cars, err := h.service.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// Get handles GET /api/cars/:id.
//
// @Summary      Get a car by id
// @Tags         cars
// @Produce      json
// @Param        id  path  string  true  "Car id"
// @Success      200 {object}  domain.Car
// @Failure      404 {object}  map[string]string
// @Router       /api/cars/{id} [get]
func (h *CarHandler) Get(c echo.Context) error {
	car, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// Create handles POST /api/cars (admin only).
//
// @Summary      Add a car to the fleet
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCarRequest  true  "Car details"
// @Success      201   {object}  domain.Car
// @Failure      400   {object}  map[string]string
// @Router       /api/cars [post]
func (h *CarHandler) Create(c echo.Context) error {
	var req createCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.service.Add(c.Request().Context(), &domain.Car{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, car)
}

// Delete handles DELETE /api/cars/:id (admin only). Absent ids are a no-op.
//
// @Summary      Delete a car
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Car id"
// @Success      200 {object}  confirmationResponse
// @Router       /api/cars/{id} [delete]
func (h *CarHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, confirmationResponse{Message: "car deleted"})
}
