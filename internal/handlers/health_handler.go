package handlers

import (
	"time"

	"fiufit-users/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves the liveness probe and static reference data.
type HealthHandler struct {
	locations *services.LocationService
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler. Uptime is counted from this call.
func NewHealthHandler(locations *services.LocationService) *HealthHandler {
	return &HealthHandler{
		locations: locations,
		startedAt: time.Now(),
	}
}

// RegisterRoutes registers the health routes with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/healthcheck", h.HandleHealthcheck)
	router.Get("/users/locations", h.HandleLocations)
}

// HandleHealthcheck reports the seconds elapsed since start.
func (h *HealthHandler) HandleHealthcheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"uptime": time.Since(h.startedAt).Seconds(),
	})
}

// HandleLocations lists the named reference places.
func (h *HealthHandler) HandleLocations(c *fiber.Ctx) error {
	return c.JSON(h.locations.NamedLocations())
}
