package repositories

import "fiufit-users/internal/models"

// FollowRepository defines the interface for follow-edge data access.
// It does not check that either id references an existing user.
type FollowRepository interface {
	// Create inserts the edge. An existing edge for the same pair is not an error.
	Create(followerID, followedID uint) error
	// Delete removes the edge if present.
	Delete(followerID, followedID uint) error
	// Followed lists the users followerID follows, in edge insertion order.
	Followed(followerID uint) ([]models.User, error)
	// Followers lists the users following followedID, in edge insertion order.
	Followers(followedID uint) ([]models.User, error)
}
