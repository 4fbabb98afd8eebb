package handlers

import (
	"vegfeedback/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VegetableHandler handles HTTP requests for the vegetable catalog.
type VegetableHandler struct {
	service *services.VegetableService
}

// NewVegetableHandler creates a new VegetableHandler.
func NewVegetableHandler(service *services.VegetableService) *VegetableHandler {
	return &VegetableHandler{
		service: service,
	}
}

// RegisterRoutes registers the vegetable routes with the Fiber app.
func (h *VegetableHandler) RegisterRoutes(router fiber.Router) {
	vegetableRoutes := router.Group("/vegetables")
	vegetableRoutes.Get("/", h.HandleGetVegetables)
	vegetableRoutes.Get("/:id", h.HandleGetVegetable)
}

// HandleGetVegetables lists the catalog, optionally for one mealType.
func (h *VegetableHandler) HandleGetVegetables(c *fiber.Ctx) error {
	vegetables, err := h.service.GetVegetables(c.UserContext(), mealTypeQuery(c))
	if err != nil {
		return respondError(c, err, "Error fetching vegetables")
	}
	return c.JSON(vegetables)
}

// HandleGetVegetable retrieves a single vegetable by its ID.
func (h *VegetableHandler) HandleGetVegetable(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err, "Error fetching vegetable")
	}
	vegetable, err := h.service.GetVegetable(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Error fetching vegetable")
	}
	return c.JSON(vegetable)
}
