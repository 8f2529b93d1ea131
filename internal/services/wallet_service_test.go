package services_test

import (
	"errors"
	"testing"

	"fiufit-users/internal/models"
	"fiufit-users/internal/services"
	"fiufit-users/pkg/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletService() (*services.WalletService, *MockWalletRepository, *MockUserRepository, *MockPaymentsGateway) {
	wallets := new(MockWalletRepository)
	users := new(MockUserRepository)
	gateway := new(MockPaymentsGateway)
	return services.NewWalletService(wallets, users, gateway), wallets, users, gateway
}

func TestWalletService_Create(t *testing.T) {
	service, wallets, _, gateway := newWalletService()
	gateway.On("CreateWallet").Return(&payments.NewWallet{Address: "test_address", PrivateKey: "test_key"}, nil).Once()
	wallets.On("Create", &models.Wallet{UserID: 1, Address: "test_address", PrivateKey: "test_key"}).Return(nil).Once()

	wallet, err := service.Create(1)
	require.NoError(t, err)
	assert.Equal(t, "test_address", wallet.Address)
	wallets.AssertExpectations(t)
	gateway.AssertExpectations(t)

	gateway.On("CreateWallet").Return(nil, errors.New("down")).Once()
	_, err = service.Create(2)
	assert.Error(t, err)
}

func TestWalletService_BalanceOfMissingWallet(t *testing.T) {
	service, wallets, _, gateway := newWalletService()
	wallets.On("GetByUserID", uint(1)).Return(nil, notFound("wallet")).Once()

	_, err := service.Balance(1)
	assert.True(t, errors.Is(err, services.ErrWalletNotFound))
	gateway.AssertNotCalled(t, "Balance", mock.Anything)
}

func TestWalletService_Balance(t *testing.T) {
	service, wallets, _, gateway := newWalletService()
	wallets.On("GetByUserID", uint(1)).Return(&models.Wallet{UserID: 1, Address: "a1"}, nil).Once()
	gateway.On("Balance", "a1").Return(0.5, nil).Once()

	balance, err := service.Balance(1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, balance)
}

func TestWalletService_DepositToTrainer(t *testing.T) {
	service, wallets, users, gateway := newWalletService()
	req := &models.DepositRequest{SenderID: 1, ReceiverID: 2, Amount: 0.01}

	users.On("GetByID", uint(2)).Return(&models.User{ID: 2, IsAthlete: false}, nil).Once()
	wallets.On("GetByUserID", uint(1)).Return(&models.Wallet{UserID: 1, Address: "a1", PrivateKey: "k1"}, nil).Once()
	wallets.On("GetByUserID", uint(2)).Return(&models.Wallet{UserID: 2, Address: "a2", PrivateKey: "k2"}, nil).Once()
	gateway.On("Deposit", payments.Transfer{SenderKey: "k1", ReceiverAddress: "a2", Amount: 0.01}).Return(nil).Once()
	wallets.On("RecordTransaction", mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Kind == models.TransactionDeposit && *tx.SenderID == 1 && *tx.ReceiverID == 2
	})).Return(nil).Once()

	require.NoError(t, service.Deposit(req))
	wallets.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestWalletService_DepositToAthleteRejected(t *testing.T) {
	service, _, users, gateway := newWalletService()
	users.On("GetByID", uint(1)).Return(&models.User{ID: 1, IsAthlete: true}, nil).Once()

	err := service.Deposit(&models.DepositRequest{SenderID: 2, ReceiverID: 1, Amount: 0.01})
	assert.True(t, errors.Is(err, services.ErrInvalidReceiver))
	gateway.AssertNotCalled(t, "Deposit", mock.Anything)
}

func TestWalletService_ExtractionLogFailureDoesNotFail(t *testing.T) {
	service, wallets, _, gateway := newWalletService()
	wallets.On("GetByUserID", uint(1)).Return(&models.Wallet{UserID: 1, Address: "a1", PrivateKey: "k1"}, nil).Once()
	gateway.On("Extraction", payments.Transfer{SenderKey: "k1", ReceiverAddress: "fakeaddress", Amount: 0.02}).Return(nil).Once()
	wallets.On("RecordTransaction", mock.Anything).Return(errors.New("disk full")).Once()

	err := service.Extraction(&models.ExtractionRequest{SenderID: 1, ReceiverAddress: "fakeaddress", Amount: 0.02})
	assert.NoError(t, err)
	wallets.AssertExpectations(t)
}

func TestWalletService_AddBalance(t *testing.T) {
	service, wallets, _, gateway := newWalletService()
	wallets.On("GetByUserID", uint(1)).Return(&models.Wallet{UserID: 1, Address: "a1"}, nil).Once()
	gateway.On("AddBalance", "a1", 0.02).Return(nil).Once()
	wallets.On("RecordTransaction", mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Kind == models.TransactionBonus && tx.SenderID == nil && *tx.ReceiverID == 1
	})).Return(nil).Once()

	require.NoError(t, service.AddBalance(1, 0.02))
	gateway.AssertExpectations(t)
	wallets.AssertExpectations(t)
}

func TestWalletService_Transactions(t *testing.T) {
	service, wallets, _, _ := newWalletService()
	wallets.On("ListTransactions", 0, 10).Return([]models.Transaction{}, int64(0), nil).Once()

	page, err := service.Transactions(0, 0)
	require.NoError(t, err)
	assert.Equal(t, &models.Page[models.Transaction]{Items: []models.Transaction{}, Page: 1}, page)
}
