package services

import (
	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
)

// FollowService maintains the follow graph. Callers check that both users exist.
type FollowService struct {
	repo repositories.FollowRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(repo repositories.FollowRepository) *FollowService {
	return &FollowService{
		repo: repo,
	}
}

// Follow makes follower follow followed and returns the users follower now follows.
// Following someone twice is not an error.
func (s *FollowService) Follow(follower, followed uint) ([]models.User, error) {
	if err := s.repo.Create(follower, followed); err != nil {
		return nil, err
	}
	return s.repo.Followed(follower)
}

// Unfollow removes the edge if present and returns the users follower still follows.
func (s *FollowService) Unfollow(follower, followed uint) ([]models.User, error) {
	if err := s.repo.Delete(follower, followed); err != nil {
		return nil, err
	}
	return s.repo.Followed(follower)
}

// Followed lists the users id follows.
func (s *FollowService) Followed(id uint) ([]models.User, error) {
	return s.repo.Followed(id)
}

// Followers lists the users following id.
func (s *FollowService) Followers(id uint) ([]models.User, error) {
	return s.repo.Followers(id)
}
