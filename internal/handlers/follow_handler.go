package handlers

import (
	"fiufit-users/internal/middleware"
	"fiufit-users/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FollowHandler handles HTTP requests for the follow graph.
type FollowHandler struct {
	follows  *services.FollowService
	users    *services.UserService
	verifier services.CredentialVerifier
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(follows *services.FollowService, users *services.UserService, verifier services.CredentialVerifier) *FollowHandler {
	return &FollowHandler{
		follows:  follows,
		users:    users,
		verifier: verifier,
	}
}

// RegisterRoutes registers the follow routes with the Fiber app.
func (h *FollowHandler) RegisterRoutes(router fiber.Router) {
	followRoutes := router.Group("/users/:id")
	followRoutes.Get("/followed", h.HandleFollowed)
	followRoutes.Get("/followers", h.HandleFollowers)
	followRoutes.Post("/followed/:target", h.HandleFollow)
	followRoutes.Delete("/followed/:target", h.HandleUnfollow)
}

// HandleFollowed lists the users followed by :id.
func (h *FollowHandler) HandleFollowed(c *fiber.Ctx) error {
	id, err := h.existing(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	users, err := h.follows.Followed(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleFollowers lists the users following :id.
func (h *FollowHandler) HandleFollowers(c *fiber.Ctx) error {
	id, err := h.existing(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	users, err := h.follows.Followers(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleFollow makes :id follow :target and returns the users :id follows.
func (h *FollowHandler) HandleFollow(c *fiber.Ctx) error {
	id, target, err := h.pair(c)
	if err != nil {
		return respondError(c, err)
	}
	if id == target {
		return respondError(c, services.ErrSelfFollow)
	}
	if err := h.authorize(c, id); err != nil {
		return respondError(c, err)
	}

	users, err := h.follows.Follow(id, target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleUnfollow removes the :id -> :target edge if present.
func (h *FollowHandler) HandleUnfollow(c *fiber.Ctx) error {
	id, target, err := h.pair(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.authorize(c, id); err != nil {
		return respondError(c, err)
	}

	users, err := h.follows.Unfollow(id, target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// existing reads the user id in param and checks that the user exists.
func (h *FollowHandler) existing(c *fiber.Ctx, param string) (uint, error) {
	id, err := paramID(c, param)
	if err != nil {
		return 0, err
	}
	if _, err := h.users.Get(id); err != nil {
		return 0, err
	}
	return id, nil
}

func (h *FollowHandler) pair(c *fiber.Ctx) (uint, uint, error) {
	id, err := h.existing(c, "id")
	if err != nil {
		return 0, 0, err
	}
	target, err := h.existing(c, "target")
	if err != nil {
		return 0, 0, err
	}
	return id, target, nil
}

func (h *FollowHandler) authorize(c *fiber.Ctx, id uint) error {
	creds, err := middleware.Credentials(c, h.verifier)
	if err != nil {
		return err
	}
	if !creds.Owns(id) {
		return services.ErrInvalidCredentials
	}
	return nil
}
