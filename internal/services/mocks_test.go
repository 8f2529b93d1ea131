package services_test

import (
	"context"
	"encoding/json"
	"sync"

	"fiufit-users/internal/models"
	"fiufit-users/pkg/payments"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) List(offset, limit int) ([]models.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ListByIDs(ids []uint, offset, limit int) ([]models.User, int64, error) {
	args := m.Called(ids, offset, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

// MockFollowRepository is a mock implementation of repositories.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(followerID, followedID uint) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(followerID, followedID uint) error {
	args := m.Called(followerID, followedID)
	return args.Error(0)
}

func (m *MockFollowRepository) Followed(followerID uint) ([]models.User, error) {
	args := m.Called(followerID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) Followers(followedID uint) ([]models.User, error) {
	args := m.Called(followedID)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockLocationRepository is a mock implementation of repositories.LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Upsert(ctx context.Context, userID uint, point models.Coordinates) error {
	args := m.Called(ctx, userID, point)
	return args.Error(0)
}

func (m *MockLocationRepository) Within(ctx context.Context, point models.Coordinates, radius float64) ([]uint, error) {
	args := m.Called(ctx, point, radius)
	return args.Get(0).([]uint), args.Error(1)
}

// MockWalletRepository is a mock implementation of repositories.WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(wallet *models.Wallet) error {
	args := m.Called(wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) RecordTransaction(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *MockWalletRepository) ListTransactions(offset, limit int) ([]models.Transaction, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

// MockAdminRepository is a mock implementation of repositories.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *models.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetAll() ([]models.Admin, error) {
	args := m.Called()
	return args.Get(0).([]models.Admin), args.Error(1)
}

// MockIdentityProvider is a mock implementation of services.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Register(email, password string) error {
	args := m.Called(email, password)
	return args.Error(0)
}

func (m *MockIdentityProvider) Login(email, password string) error {
	args := m.Called(email, password)
	return args.Error(0)
}

func (m *MockIdentityProvider) TokenLogin(authorization string, req *models.LoginRequest) (json.RawMessage, error) {
	args := m.Called(authorization, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockIdentityProvider) ValidateIDPToken(authorization string) error {
	args := m.Called(authorization)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of services.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Token(role string, id uint) (string, error) {
	args := m.Called(role, id)
	return args.String(0), args.Error(1)
}

// MockPaymentsGateway is a mock implementation of services.PaymentsGateway
type MockPaymentsGateway struct {
	mock.Mock
}

func (m *MockPaymentsGateway) CreateWallet() (*payments.NewWallet, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.NewWallet), args.Error(1)
}

func (m *MockPaymentsGateway) Balance(address string) (float64, error) {
	args := m.Called(address)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPaymentsGateway) Deposit(t payments.Transfer) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockPaymentsGateway) Extraction(t payments.Transfer) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockPaymentsGateway) AddBalance(address string, amount float64) error {
	args := m.Called(address, amount)
	return args.Error(0)
}

// MockWalletIssuer is a mock implementation of services.WalletIssuer
type MockWalletIssuer struct {
	mock.Mock
}

func (m *MockWalletIssuer) Create(userID uint) (*models.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

// recorderSpy keeps every recorded metric as "metric:label".
type recorderSpy struct {
	mu     sync.Mutex
	events []string
}

func (r *recorderSpy) Record(metric, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, metric+":"+label)
}

func (r *recorderSpy) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func ptr[T any](v T) *T {
	return &v
}
