package repositories

import "fiufit-users/internal/models"

// AdminRepository defines the interface for admin data access.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
	GetAll() ([]models.Admin, error)
}
