package handlers

import (
	"fiufit-users/internal/middleware"
	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for back-office admins.
type AdminHandler struct {
	admins   *services.AdminService
	verifier services.CredentialVerifier
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admins *services.AdminService, verifier services.CredentialVerifier) *AdminHandler {
	return &AdminHandler{
		admins:   admins,
		verifier: verifier,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes. Every route requires an admin caller.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/users/admins", middleware.AdminRequired(h.verifier, respondError))
	adminRoutes.Get("/", h.HandleList)
	adminRoutes.Post("/", h.HandleCreate)
}

// HandleList lists every admin.
func (h *AdminHandler) HandleList(c *fiber.Ctx) error {
	admins, err := h.admins.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admins)
}

// HandleCreate registers a new admin.
func (h *AdminHandler) HandleCreate(c *fiber.Ctx) error {
	var in models.AdminCreate
	if err := bindBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}

	admin, err := h.admins.Create(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admin)
}
