package handlers

import (
	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
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

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/users")
	authRoutes.Post("/login", h.login(models.RoleUser))
	authRoutes.Post("/admin/login", h.login(models.RoleAdmin))
	authRoutes.Post("/login/usersIDP", h.HandleIDPLogin)
}

// login builds the login handler for role. A request carrying a bearer token renews it
// through the auth service and gets the auth service answer unchanged.
func (h *AuthHandler) login(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := bindBody(c, h.validate, &req); err != nil {
			return respondError(c, err)
		}

		if authorization := c.Get(fiber.HeaderAuthorization); authorization != "" {
			body, err := h.authService.TokenLogin(role, authorization, &req)
			if err != nil {
				return respondError(c, err)
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}

		resp, err := h.authService.Login(role, &req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(resp)
	}
}

// HandleIDPLogin logs in a user holding an identity provider token.
func (h *AuthHandler) HandleIDPLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	authorization := c.Get(fiber.HeaderAuthorization)
	if authorization == "" {
		return respondError(c, services.ErrNoToken)
	}

	resp, err := h.authService.IDPLogin(authorization, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
