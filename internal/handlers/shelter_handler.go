package handlers

import (
	"log"
	"strconv"

	"petmatch/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ShelterHandler handles HTTP requests for shelter profiles.
type ShelterHandler struct {
	service *services.ShelterService
}

// NewShelterHandler creates a new ShelterHandler.
func NewShelterHandler(service *services.ShelterService) *ShelterHandler {
	return &ShelterHandler{
		service: service,
	}
}

// RegisterRoutes registers the shelter routes with the Fiber app.
func (h *ShelterHandler) RegisterRoutes(router fiber.Router) {
	shelterRoutes := router.Group("/shelters")
	shelterRoutes.Get("/:id", h.HandleGetShelter)
	shelterRoutes.Delete("/:id", h.HandleDeleteShelter)
}

// HandleGetShelter returns a shelter profile or 404.
func (h *ShelterHandler) HandleGetShelter(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	shelter, err := h.service.GetByID(id)
	if err != nil {
		log.Printf("Error getting shelter %d: %v", id, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Shelter not found",
		})
	}

	return c.JSON(shelter)
}

// HandleDeleteShelter removes a shelter account. Deletion is refused with
// 409 while the shelter still lists pets.
func (h *ShelterHandler) HandleDeleteShelter(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting shelter %d: %v", id, err)
		status := errorStatus(err)
		if status == fiber.StatusBadRequest {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"message": "Could not delete shelter",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
