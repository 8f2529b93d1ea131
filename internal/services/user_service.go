package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fiufit-users/internal/metrics"
	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
)

// WalletIssuer opens the wallet of a newly registered user.
type WalletIssuer interface {
	Create(userID uint) (*models.Wallet, error)
}

// UserService handles registration and profile changes.
type UserService struct {
	users     repositories.UserRepository
	locations *LocationService
	wallets   WalletIssuer
	identity  IdentityProvider
	metrics   metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(
	users repositories.UserRepository,
	locations *LocationService,
	wallets WalletIssuer,
	identity IdentityProvider,
	recorder metrics.Recorder,
) *UserService {
	return &UserService{
		users:     users,
		locations: locations,
		wallets:   wallets,
		identity:  identity,
		metrics:   recorder,
	}
}

// Create registers the password account, then stores the profile, the trainer location and the wallet.
func (s *UserService) Create(ctx context.Context, in *models.UserCreate) (*models.User, error) {
	if err := s.checkAvailable(in.Email, in.Username); err != nil {
		return nil, err
	}
	if err := s.identity.Register(in.Email, in.Password); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", in.Email, err)
	}
	return s.insert(ctx, in.Profile(), models.CoordinatesFromPair(in.Coordinates))
}

// CreateFromIDP registers a user whose identity was already proven by an external identity provider token.
func (s *UserService) CreateFromIDP(ctx context.Context, authorization string, in *models.UserIDPCreate) (*models.User, error) {
	if err := s.identity.ValidateIDPToken(authorization); err != nil {
		return nil, fmt.Errorf("failed to validate identity provider token: %w", err)
	}
	if err := s.checkAvailable(in.Email, in.Username); err != nil {
		return nil, err
	}
	return s.insert(ctx, in.Profile(), models.CoordinatesFromPair(in.Coordinates))
}

func (s *UserService) checkAvailable(email, username string) error {
	if _, err := s.users.GetByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if _, err := s.users.GetByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	return nil
}

// insert stores the row and runs the follow-up writes, deleting the row again if one of them fails.
func (s *UserService) insert(ctx context.Context, user *models.User, coords *models.Coordinates) (*models.User, error) {
	user.SetCoordinates(coords)
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, s.checkAvailableOr(user, err)
		}
		return nil, err
	}

	if err := s.locations.Save(ctx, user.IsAthlete, user.ID, coords); err != nil {
		return nil, s.rollback(user.ID, err)
	}
	if _, err := s.wallets.Create(user.ID); err != nil {
		return nil, s.rollback(user.ID, err)
	}

	label := "trainer"
	if user.IsAthlete {
		label = "athlete"
	}
	s.metrics.Record(metrics.UserCreated, label)
	log.Printf("Created user %d (%s)", user.ID, user.Username)
	return user, nil
}

// checkAvailableOr names the taken field after a unique index rejected an insert that raced another one.
func (s *UserService) checkAvailableOr(user *models.User, fallback error) error {
	if err := s.checkAvailable(user.Email, user.Username); err != nil {
		return err
	}
	return fallback
}

func (s *UserService) rollback(id uint, cause error) error {
	log.Printf("Registration of user %d failed, removing it: %v", id, cause)
	if err := s.users.Delete(id); err != nil {
		log.Printf("Failed to remove user %d: %v", id, err)
	}
	return cause
}

// Get retrieves a user by id.
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies the non-nil fields of in to user and stores new coordinates of trainers.
func (s *UserService) Update(ctx context.Context, user *models.User, in *models.UserUpdate) (*models.User, error) {
	if in.Username != nil && *in.Username != user.Username {
		if _, err := s.users.GetByUsername(*in.Username); err == nil {
			return nil, ErrUsernameTaken
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		user.Username = *in.Username
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Surname != nil {
		user.Surname = *in.Surname
	}
	if in.Height != nil {
		user.Height = *in.Height
	}
	if in.Weight != nil {
		user.Weight = *in.Weight
	}
	if in.BirthDate != nil {
		user.BirthDate = *in.BirthDate
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	coords := models.CoordinatesFromPair(in.Coordinates)
	user.SetCoordinates(coords)

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	if err := s.locations.Save(ctx, user.IsAthlete, user.ID, coords); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleBlocked flips the blocked flag of user.
func (s *UserService) ToggleBlocked(user *models.User) (*models.User, error) {
	user.IsBlocked = !user.IsBlocked
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	if user.IsBlocked {
		s.metrics.Record(metrics.UserBlocked, "")
	}
	return user, nil
}
