package handlers

import (
	"fiufit-users/internal/middleware"
	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	users    *services.UserService
	search   *services.SearchService
	verifier services.CredentialVerifier
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService, search *services.SearchService, verifier services.CredentialVerifier) *UserHandler {
	return &UserHandler{
		users:    users,
		search:   search,
		verifier: verifier,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes. It must run after every handler owning a
// static /users/<name> path, since /users/:id would shadow them.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleSearch)
	userRoutes.Post("/", h.HandleCreate)
	userRoutes.Post("/usersIDP", h.HandleCreateIDP)
	userRoutes.Patch("/status/:id", h.HandleToggleBlocked)
	userRoutes.Get("/:id", h.HandleGet)
	userRoutes.Patch("/:id", h.HandleUpdate)
}

type searchQuery struct {
	Username  string   `query:"username"`
	Longitude *float64 `query:"longitude"`
	Latitude  *float64 `query:"latitude"`
	Radius    float64  `query:"radius"`
	Offset    int      `query:"offset"`
	Limit     int      `query:"limit"`
}

// HandleSearch lists users, by username or by distance to a point when asked to.
// A username search answers with the matching user instead of a page.
func (h *UserHandler) HandleSearch(c *fiber.Ctx) error {
	var q searchQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, &paramError{name: "query parameters"})
	}

	result, err := h.search.Search(c.UserContext(), services.SearchParams{
		Username:  q.Username,
		Longitude: q.Longitude,
		Latitude:  q.Latitude,
		Radius:    q.Radius,
		Offset:    q.Offset,
		Limit:     q.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	if result.User != nil {
		return c.JSON(result.User)
	}
	return c.JSON(result.Page)
}

// HandleCreate registers a user with email and password.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var in models.UserCreate
	if err := bindBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Create(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleCreateIDP registers a user already authenticated by the identity provider.
func (h *UserHandler) HandleCreateIDP(c *fiber.Ctx) error {
	var in models.UserIDPCreate
	if err := bindBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}

	user, err := h.users.CreateFromIDP(c.UserContext(), c.Get(fiber.HeaderAuthorization), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleGet retrieves a single user by id.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.users.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleUpdate applies a partial update. Only the user itself may edit its profile.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.users.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	var in models.UserUpdate
	if err := bindBody(c, h.validate, &in); err != nil {
		return respondError(c, err)
	}

	creds, err := middleware.Credentials(c, h.verifier)
	if err != nil {
		return respondError(c, err)
	}
	if !creds.Owns(user.ID) {
		return respondError(c, services.ErrInvalidCredentials)
	}

	updated, err := h.users.Update(c.UserContext(), user, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleToggleBlocked blocks or unblocks a user. Admin only.
func (h *UserHandler) HandleToggleBlocked(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.users.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	creds, err := middleware.Credentials(c, h.verifier)
	if err != nil {
		return respondError(c, err)
	}
	if !creds.IsAdmin() {
		return respondError(c, services.ErrInvalidCredentials)
	}

	updated, err := h.users.ToggleBlocked(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}
