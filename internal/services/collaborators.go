package services

import (
	"encoding/json"

	"fiufit-users/internal/models"
	"fiufit-users/pkg/payments"
)

// CredentialVerifier resolves the caller behind an Authorization header value.
type CredentialVerifier interface {
	Credentials(authorization string) (*models.Credentials, error)
}

// TokenIssuer signs tokens for a role and id.
type TokenIssuer interface {
	Token(role string, id uint) (string, error)
}

// IdentityProvider owns passwords and external identity provider tokens.
type IdentityProvider interface {
	Register(email, password string) error
	Login(email, password string) error
	TokenLogin(authorization string, req *models.LoginRequest) (json.RawMessage, error)
	ValidateIDPToken(authorization string) error
}

// PaymentsGateway executes wallet operations.
type PaymentsGateway interface {
	CreateWallet() (*payments.NewWallet, error)
	Balance(address string) (float64, error)
	Deposit(t payments.Transfer) error
	Extraction(t payments.Transfer) error
	AddBalance(address string, amount float64) error
}
