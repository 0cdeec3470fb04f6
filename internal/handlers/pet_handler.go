package handlers

import (
	"log"
	"strconv"

	"petmatch/internal/models"
	"petmatch/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PetHandler handles HTTP requests for pet listings.
type PetHandler struct {
	service  *services.PetService
	validate *validator.Validate
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *services.PetService) *PetHandler {
	return &PetHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the pet routes with the Fiber app.
func (h *PetHandler) RegisterRoutes(router fiber.Router) {
	petRoutes := router.Group("/pets")
	petRoutes.Get("/available", h.HandleGetAvailable)
	petRoutes.Get("/user", h.HandleGetAvailableFiltered)
	petRoutes.Get("/", h.HandleGetPets)
	petRoutes.Post("/", h.HandleCreatePet)
	petRoutes.Put("/:id", h.HandleUpdatePet)
	petRoutes.Delete("/:id", h.HandleDeletePet)
}

// HandleGetPets lists a shelter's pets when shelterId is given, otherwise
// every pet.
func (h *PetHandler) HandleGetPets(c *fiber.Ctx) error {
	shelterQuery := c.Query("shelterId")
	if shelterQuery == "" {
		pets, err := h.service.GetAll()
		if err != nil {
			log.Printf("Error getting all pets: %v", err)
			return c.Status(errorStatus(err)).JSON(fiber.Map{
				"message": "Could not retrieve pets",
			})
		}
		return c.JSON(pets)
	}

	shelterID, err := strconv.ParseInt(shelterQuery, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shelterId",
		})
	}

	pets, err := h.service.GetByShelter(shelterID)
	if err != nil {
		log.Printf("Error getting pets for shelter %d: %v", shelterID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve pets",
		})
	}
	return c.JSON(pets)
}

// HandleGetAvailable lists every pet still open for adoption.
func (h *PetHandler) HandleGetAvailable(c *fiber.Ctx) error {
	pets, err := h.service.GetAvailable()
	if err != nil {
		log.Printf("Error getting available pets: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve available pets",
		})
	}
	return c.JSON(pets)
}

// HandleGetAvailableFiltered lists available pets matching the optional
// species/size/gender query parameters.
func (h *PetHandler) HandleGetAvailableFiltered(c *fiber.Ctx) error {
	pets, err := h.service.GetAvailableFiltered(
		optionalQuery(c, "species"),
		optionalQuery(c, "size"),
		optionalQuery(c, "gender"),
	)
	if err != nil {
		log.Printf("Error getting filtered pets: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve pets",
		})
	}
	return c.JSON(pets)
}

// HandleCreatePet lists a new pet under the shelter given by the shelterId
// query parameter.
func (h *PetHandler) HandleCreatePet(c *fiber.Ctx) error {
	shelterQuery := c.Query("shelterId")
	if shelterQuery == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing shelterId",
		})
	}
	shelterID, err := strconv.ParseInt(shelterQuery, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shelterId",
		})
	}

	var req models.PetCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing pet create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	pet, err := h.service.Create(req, shelterID)
	if err != nil {
		log.Printf("Error creating pet: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not create pet",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(pet)
}

// HandleUpdatePet applies a partial update to a pet listing.
func (h *PetHandler) HandleUpdatePet(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	var req models.PetUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing pet update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	pet, err := h.service.Update(id, req)
	if err != nil {
		log.Printf("Error updating pet %d: %v", id, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not update pet",
		})
	}

	return c.JSON(pet)
}

// HandleDeletePet removes a pet listing. Succeeds regardless of prior
// existence.
func (h *PetHandler) HandleDeletePet(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting pet %d: %v", id, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not delete pet",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Pet deleted successfully",
	})
}

// optionalQuery returns a pointer to the query value, or nil when the
// parameter is absent or empty.
func optionalQuery(c *fiber.Ctx, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}
