package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-booking/internal/api/dto"
	"github.com/spec-kit/hotel-booking/internal/domain"
	"github.com/spec-kit/hotel-booking/internal/service"
	apperrors "github.com/spec-kit/hotel-booking/pkg/util"
)

// HotelsHandler manages hotel CRUD endpoints.
type HotelsHandler struct {
	service *service.HotelService
}

// NewHotelsHandler constructs handler.
func NewHotelsHandler(hotelService *service.HotelService) *HotelsHandler {
	return &HotelsHandler{service: hotelService}
}

// List GET /api/hotels.
func (h *HotelsHandler) List(c *fiber.Ctx) error {
	hotels, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.HotelResponse, 0, len(hotels))
	for i := range hotels {
		items = append(items, hotelResponse(&hotels[i]))
	}
	return c.JSON(items)
}

// Get GET /api/hotels/:id.
func (h *HotelsHandler) Get(c *fiber.Ctx) error {
	hotel, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(hotelResponse(hotel))
}

// Create POST /api/hotels.
func (h *HotelsHandler) Create(c *fiber.Ctx) error {
	input, err := parseHotelRequest(c)
	if err != nil {
		return err
	}

	hotel, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Hotel created successfully",
		"hotel":   hotelResponse(hotel),
	})
}

// Update PUT /api/hotels/:id.
func (h *HotelsHandler) Update(c *fiber.Ctx) error {
	input, err := parseHotelRequest(c)
	if err != nil {
		return err
	}

	hotel, err := h.service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Hotel updated successfully",
		"hotel":   hotelResponse(hotel),
	})
}

// Delete DELETE /api/hotels/:id.
func (h *HotelsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Hotel deleted successfully"})
}

func parseHotelRequest(c *fiber.Ctx) (service.HotelInput, error) {
	var req dto.HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return service.HotelInput{}, apperrors.NewValidationError("invalid payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Location) == "" {
		return service.HotelInput{}, apperrors.NewValidationError("name and location required")
	}
	if req.PricePerNight <= 0 {
		return service.HotelInput{}, apperrors.NewValidationError("pricePerNight must be positive")
	}
	return service.HotelInput{
		Name:          req.Name,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	}, nil
}

func hotelResponse(hotel *domain.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:            hotel.ID,
		Name:          hotel.Name,
		Location:      hotel.Location,
		PricePerNight: hotel.PricePerNight,
		CreatedAt:     hotel.CreatedAt,
		UpdatedAt:     hotel.UpdatedAt,
	}
}
