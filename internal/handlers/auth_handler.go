package handlers

import (
	"log"
	"strings"

	"petmatch/internal/models"
	"petmatch/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/login", h.HandleLogin)
	router.Post("/registerUser", h.HandleRegisterUser)
	router.Post("/registerShelter", h.HandleRegisterShelter)
}

// RegisterProtectedRoutes registers the routes that require a valid token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/me", h.HandleMe)
}

// HandleLogin authenticates either account kind and returns id, role and a
// signed token, or 401 on mismatch.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
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

	resp, err := h.authService.Login(req.Email, req.PasswordHash)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	}

	return c.JSON(resp)
}

// HandleRegisterUser registers a new adopter account.
func (h *AuthHandler) HandleRegisterUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing user registration body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	id, err := h.authService.RegisterUser(&user)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		if strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.RegisterResponse{ID: id})
}

// HandleRegisterShelter registers a new shelter account.
func (h *AuthHandler) HandleRegisterShelter(c *fiber.Ctx) error {
	var shelter models.Shelter
	if err := c.BodyParser(&shelter); err != nil {
		log.Printf("Error parsing shelter registration body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(shelter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	id, err := h.authService.RegisterShelter(&shelter)
	if err != nil {
		log.Printf("Error registering shelter: %v", err)
		if strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not register shelter",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.RegisterResponse{ID: id})
}

// HandleMe returns the authenticated account, resolved from the token claims
// set by the auth middleware.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	accountID, okID := c.Locals("account_id").(int64)
	role, okRole := c.Locals("role").(string)
	if !okID || !okRole {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing authentication context",
		})
	}

	account, err := h.authService.Account(role, accountID)
	if err != nil {
		log.Printf("Error resolving account %d (%s): %v", accountID, role, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not resolve account",
		})
	}

	return c.JSON(fiber.Map{
		"role":    role,
		"account": account,
	})
}
