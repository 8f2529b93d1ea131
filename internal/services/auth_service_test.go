package services_test

import (
	"encoding/json"
	"errors"
	"testing"

	"fiufit-users/internal/metrics"
	"fiufit-users/internal/models"
	"fiufit-users/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceDeps struct {
	users    *MockUserRepository
	admins   *MockAdminRepository
	identity *MockIdentityProvider
	tokens   *MockTokenIssuer
	metrics  *recorderSpy
}

func newAuthService() (*services.AuthService, *authServiceDeps) {
	d := &authServiceDeps{
		users:    new(MockUserRepository),
		admins:   new(MockAdminRepository),
		identity: new(MockIdentityProvider),
		tokens:   new(MockTokenIssuer),
		metrics:  &recorderSpy{},
	}
	return services.NewAuthService(d.users, d.admins, d.identity, d.tokens, d.metrics), d
}

func TestAuthService_Login(t *testing.T) {
	service, d := newAuthService()
	req := &models.LoginRequest{Email: "a@b.com", Password: "secret"}

	d.users.On("GetByEmail", "a@b.com").Return(&models.User{ID: 4}, nil).Once()
	d.identity.On("Login", "a@b.com", "secret").Return(nil).Once()
	d.tokens.On("Token", models.RoleUser, uint(4)).Return("signed", nil).Once()

	resp, err := service.Login(models.RoleUser, req)
	require.NoError(t, err)
	assert.Equal(t, &models.LoginResponse{Token: "signed", ID: 4}, resp)
	assert.Equal(t, []string{metrics.UserLogin + ":email"}, d.metrics.Events())
	d.users.AssertExpectations(t)
	d.identity.AssertExpectations(t)
	d.tokens.AssertExpectations(t)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	service, d := newAuthService()
	d.users.On("GetByEmail", "nobody@b.com").Return(nil, notFound("email")).Once()

	_, err := service.Login(models.RoleUser, &models.LoginRequest{Email: "nobody@b.com"})
	assert.True(t, errors.Is(err, services.ErrUserNotFound))
	d.identity.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthService_BlockedUserCannotLogIn(t *testing.T) {
	service, d := newAuthService()
	d.users.On("GetByEmail", "a@b.com").Return(&models.User{ID: 4, IsBlocked: true}, nil).Twice()

	_, err := service.Login(models.RoleUser, &models.LoginRequest{Email: "a@b.com", Password: "secret"})
	assert.True(t, errors.Is(err, services.ErrUserBlocked))

	_, err = service.TokenLogin(models.RoleUser, "Bearer t", &models.LoginRequest{Email: "a@b.com"})
	assert.True(t, errors.Is(err, services.ErrUserBlocked))

	d.identity.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	d.identity.AssertNotCalled(t, "TokenLogin", mock.Anything, mock.Anything)
}

func TestAuthService_TokenLoginPassesThrough(t *testing.T) {
	service, d := newAuthService()
	req := &models.LoginRequest{Email: "a@b.com"}
	body := json.RawMessage(`{"token":"renewed","id":4}`)

	d.users.On("GetByEmail", "a@b.com").Return(&models.User{ID: 4}, nil).Once()
	d.identity.On("TokenLogin", "Bearer t", req).Return(body, nil).Once()

	got, err := service.TokenLogin(models.RoleUser, "Bearer t", req)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(got))
	assert.Equal(t, []string{metrics.UserLogin + ":token"}, d.metrics.Events())
}

func TestAuthService_AdminLogin(t *testing.T) {
	service, d := newAuthService()
	req := &models.LoginRequest{Email: "root@fiufit.com", Password: "secret"}

	d.admins.On("GetByEmail", "root@fiufit.com").Return(&models.Admin{ID: 1}, nil).Once()
	d.identity.On("Login", "root@fiufit.com", "secret").Return(nil).Once()
	d.tokens.On("Token", models.RoleAdmin, uint(1)).Return("admin-token", nil).Once()

	resp, err := service.Login(models.RoleAdmin, req)
	require.NoError(t, err)
	assert.Equal(t, "admin-token", resp.Token)
	d.users.AssertNotCalled(t, "GetByEmail", mock.Anything)

	d.admins.On("GetByEmail", "user@fiufit.com").Return(nil, notFound("email")).Once()
	_, err = service.Login(models.RoleAdmin, &models.LoginRequest{Email: "user@fiufit.com"})
	assert.True(t, errors.Is(err, services.ErrAdminNotFound))
}

func TestAuthService_IDPLogin(t *testing.T) {
	service, d := newAuthService()

	d.identity.On("ValidateIDPToken", "Bearer idp").Return(nil).Twice()
	d.users.On("GetByEmail", "nosuchuser@gmail.com").Return(nil, notFound("email")).Once()
	d.users.On("GetByEmail", "jorgitodd@asddbcdd.com").Return(&models.User{ID: 1}, nil).Once()
	d.tokens.On("Token", models.RoleUser, uint(1)).Return("token", nil).Once()

	_, err := service.IDPLogin("Bearer idp", &models.LoginRequest{Email: "nosuchuser@gmail.com"})
	assert.True(t, errors.Is(err, services.ErrIDPUserNotFound))

	resp, err := service.IDPLogin("Bearer idp", &models.LoginRequest{Email: "jorgitodd@asddbcdd.com"})
	require.NoError(t, err)
	assert.Equal(t, &models.LoginResponse{Token: "token", ID: 1}, resp)
	assert.Equal(t, []string{metrics.UserLogin + ":idp"}, d.metrics.Events())
}
