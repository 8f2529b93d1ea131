package repositories

import (
	"context"

	"fiufit-users/internal/models"
)

// LocationRepository defines the interface for the trainer geolocation store.
// It does not know about user roles; callers only write trainers.
type LocationRepository interface {
	// Upsert creates or replaces the single location record of a user.
	Upsert(ctx context.Context, userID uint, point models.Coordinates) error
	// Within returns the ids of users located at most radius meters from point, nearest first.
	Within(ctx context.Context, point models.Coordinates, radius float64) ([]uint, error)
}
