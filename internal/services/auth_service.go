package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"fiufit-users/internal/metrics"
	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
)

// AuthService handles login of users and admins. Passwords are checked by the IdentityProvider.
type AuthService struct {
	users    repositories.UserRepository
	admins   repositories.AdminRepository
	identity IdentityProvider
	tokens   TokenIssuer
	metrics  metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users repositories.UserRepository,
	admins repositories.AdminRepository,
	identity IdentityProvider,
	tokens TokenIssuer,
	recorder metrics.Recorder,
) *AuthService {
	return &AuthService{
		users:    users,
		admins:   admins,
		identity: identity,
		tokens:   tokens,
		metrics:  recorder,
	}
}

// Login checks email and password and returns a token for role.
func (s *AuthService) Login(role string, req *models.LoginRequest) (*models.LoginResponse, error) {
	id, err := s.account(role, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.identity.Login(req.Email, req.Password); err != nil {
		return nil, fmt.Errorf("failed to log in %s: %w", req.Email, err)
	}
	token, err := s.tokens.Token(role, id)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.metrics.Record(metrics.UserLogin, "email")
	return &models.LoginResponse{Token: token, ID: id}, nil
}

// TokenLogin renews a session from an existing bearer token. The auth service body is returned unchanged.
func (s *AuthService) TokenLogin(role, authorization string, req *models.LoginRequest) (json.RawMessage, error) {
	if _, err := s.account(role, req.Email); err != nil {
		return nil, err
	}
	body, err := s.identity.TokenLogin(authorization, req)
	if err != nil {
		return nil, err
	}
	s.metrics.Record(metrics.UserLogin, "token")
	return body, nil
}

// IDPLogin logs in a user whose identity provider token is in authorization.
func (s *AuthService) IDPLogin(authorization string, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.identity.ValidateIDPToken(authorization); err != nil {
		return nil, fmt.Errorf("failed to validate identity provider token: %w", err)
	}
	id, err := s.account(models.RoleUser, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrIDPUserNotFound
		}
		return nil, err
	}
	token, err := s.tokens.Token(models.RoleUser, id)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.metrics.Record(metrics.UserLogin, "idp")
	return &models.LoginResponse{Token: token, ID: id}, nil
}

// account returns the id of the user or admin registered with email. Blocked users are refused.
func (s *AuthService) account(role, email string) (uint, error) {
	if role == models.RoleAdmin {
		admin, err := s.admins.GetByEmail(email)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return 0, ErrAdminNotFound
			}
			return 0, err
		}
		return admin.ID, nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	if user.IsBlocked {
		return 0, ErrUserBlocked
	}
	return user.ID, nil
}
