package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fiufit-users/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// LocalTokenService signs and verifies HS256 tokens with a secret shared with the auth service.
// It implements CredentialVerifier and TokenIssuer without a network round trip.
type LocalTokenService struct {
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewLocalTokenService creates a new LocalTokenService.
func NewLocalTokenService(jwtSecret string) *LocalTokenService {
	return &LocalTokenService{
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Token signs a token carrying role and id.
func (s *LocalTokenService) Token(role string, id uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"id":   id,
		"exp":  now.Add(s.tokenDurat).Unix(),
		"iat":  now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// Credentials validates a "Bearer <token>" header value and returns the role and id it carries.
func (s *LocalTokenService) Credentials(authorization string) (*models.Credentials, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	role, _ := claims["role"].(string)
	id, ok := claims["id"].(float64)
	if role == "" || !ok || id < 0 {
		return nil, ErrInvalidCredentials
	}
	return &models.Credentials{Role: role, ID: uint(id)}, nil
}
