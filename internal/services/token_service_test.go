package services_test

import (
	"errors"
	"testing"
	"time"

	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTokenService_RoundTrip(t *testing.T) {
	service := services.NewLocalTokenService("test_jwt_secret")

	token, err := service.Token(models.RoleAdmin, 12)
	require.NoError(t, err)

	creds, err := service.Credentials("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, &models.Credentials{Role: models.RoleAdmin, ID: 12}, creds)
	assert.True(t, creds.IsAdmin())
}

func TestLocalTokenService_Rejects(t *testing.T) {
	service := services.NewLocalTokenService("test_jwt_secret")

	_, err := service.Credentials("")
	assert.True(t, errors.Is(err, services.ErrNoToken))

	_, err = service.Credentials("Bearer not-a-token")
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))

	other, err := services.NewLocalTokenService("another_secret").Token(models.RoleUser, 1)
	require.NoError(t, err)
	_, err = service.Credentials("Bearer " + other)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": models.RoleUser,
		"id":   1,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)
	_, err = service.Credentials("Bearer " + signed)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))

	noRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1})
	signed, err = noRole.SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)
	_, err = service.Credentials("Bearer " + signed)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}
