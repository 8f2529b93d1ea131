package repositories

import "fiufit-users/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	// List returns one page of users in insertion order and the total row count.
	List(offset, limit int) ([]models.User, int64, error)
	// ListByIDs is List restricted to the given ids.
	ListByIDs(ids []uint, offset, limit int) ([]models.User, int64, error)
}
