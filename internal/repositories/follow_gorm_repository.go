package repositories

import (
	"errors"
	"fmt"

	"fiufit-users/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMFollowRepository is a GORM implementation of FollowRepository.
type GORMFollowRepository struct {
	db *gorm.DB
}

// NewGORMFollowRepository creates a new instance of GORMFollowRepository.
func NewGORMFollowRepository(db *gorm.DB) *GORMFollowRepository {
	return &GORMFollowRepository{
		db: db,
	}
}

// Create inserts a follow edge, relying on idx_follow_pair to keep it unique.
func (r *GORMFollowRepository) Create(followerID, followedID uint) error {
	edge := models.Follow{FollowerID: followerID, FollowedID: followedID}
	err := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to follow user %d from %d: %w", followedID, followerID, err)
	}
	return nil
}

// Delete removes a follow edge. Removing a missing edge is a no-op.
func (r *GORMFollowRepository) Delete(followerID, followedID uint) error {
	err := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to unfollow user %d from %d: %w", followedID, followerID, err)
	}
	return nil
}

// Followed retrieves the users followerID follows.
func (r *GORMFollowRepository) Followed(followerID uint) ([]models.User, error) {
	users := []models.User{}
	err := r.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("follows.id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users followed by %d: %w", followerID, err)
	}
	return users, nil
}

// Followers retrieves the users following followedID.
func (r *GORMFollowRepository) Followers(followedID uint) ([]models.User, error) {
	users := []models.User{}
	err := r.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", followedID).
		Order("follows.id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers of %d: %w", followedID, err)
	}
	return users, nil
}
