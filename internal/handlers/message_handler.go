package handlers

import (
	"log"
	"strconv"

	"petmatch/internal/models"
	"petmatch/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles HTTP requests for inquiry messages.
type MessageHandler struct {
	service  *services.MessageService
	validate *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the message routes with the Fiber app.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Post("/", h.HandleSendMessage)
	messageRoutes.Get("/shelter/:shelterId/unread", h.HandleUnreadCount)
	messageRoutes.Get("/shelter/:shelterId", h.HandleGetByShelter)
	messageRoutes.Get("/user/:userId", h.HandleGetByUser)
	messageRoutes.Put("/:id/read", h.HandleMarkAsRead)
	messageRoutes.Delete("/:id", h.HandleDeleteMessage)
}

// HandleSendMessage stores a new inquiry and acknowledges it with the
// assigned id.
func (h *MessageHandler) HandleSendMessage(c *fiber.Ctx) error {
	var req models.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing message body: %v", err)
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

	message, err := h.service.Create(req)
	if err != nil {
		log.Printf("Error creating message: %v", err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not send message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SendMessageResponse{
		Success:   true,
		MessageID: message.ID,
	})
}

// HandleGetByShelter lists all messages addressed to a shelter.
func (h *MessageHandler) HandleGetByShelter(c *fiber.Ctx) error {
	shelterID, err := strconv.ParseInt(c.Params("shelterId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shelterId",
		})
	}

	messages, err := h.service.GetByShelter(shelterID)
	if err != nil {
		log.Printf("Error getting messages for shelter %d: %v", shelterID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve messages",
		})
	}
	return c.JSON(messages)
}

// HandleGetByUser lists all messages sent by a user.
func (h *MessageHandler) HandleGetByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid userId",
		})
	}

	messages, err := h.service.GetByUser(userID)
	if err != nil {
		log.Printf("Error getting messages for user %d: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve messages",
		})
	}
	return c.JSON(messages)
}

// HandleMarkAsRead toggles the read flag on a message. A missing id is 404.
func (h *MessageHandler) HandleMarkAsRead(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	var req models.MarkAsReadRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing mark-as-read body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.MarkAsRead(id, req.IsRead); err != nil {
		log.Printf("Error marking message %d: %v", id, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not update message",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleDeleteMessage removes a message. Succeeds regardless of prior
// existence.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid id",
		})
	}

	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting message %d: %v", id, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not delete message",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleUnreadCount returns the number of unread messages for a shelter.
func (h *MessageHandler) HandleUnreadCount(c *fiber.Ctx) error {
	shelterID, err := strconv.ParseInt(c.Params("shelterId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shelterId",
		})
	}

	count, err := h.service.UnreadCount(shelterID)
	if err != nil {
		log.Printf("Error counting unread messages for shelter %d: %v", shelterID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not count unread messages",
		})
	}

	return c.JSON(fiber.Map{
		"count": count,
	})
}
