package handlers

import (
	"log"
	"strconv"

	"petmatch/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/:id", h.HandleGetUser)
}

// HandleGetUser returns a user profile or 404.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	user, err := h.userRepo.GetByID(id)
	if err != nil {
		log.Printf("Error getting user %d: %v", id, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	user.PasswordHash = ""
	return c.JSON(user)
}
