package services

import (
	"errors"
	"fmt"

	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
)

// AdminService manages back-office accounts.
type AdminService struct {
	repo     repositories.AdminRepository
	identity IdentityProvider
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo repositories.AdminRepository, identity IdentityProvider) *AdminService {
	return &AdminService{
		repo:     repo,
		identity: identity,
	}
}

// Create registers the admin password and stores the account.
func (s *AdminService) Create(in *models.AdminCreate) (*models.Admin, error) {
	if _, err := s.repo.GetByEmail(in.Email); err == nil {
		return nil, ErrAdminTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if err := s.identity.Register(in.Email, in.Password); err != nil {
		return nil, fmt.Errorf("failed to register admin %s: %w", in.Email, err)
	}
	admin := &models.Admin{Username: in.Username, Email: in.Email}
	if err := s.repo.Create(admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAdminTaken
		}
		return nil, err
	}
	return admin, nil
}

// List returns every admin.
func (s *AdminService) List() ([]models.Admin, error) {
	return s.repo.GetAll()
}
