package services

import (
	"errors"
	"fmt"
	"log"

	"fiufit-users/internal/models"
	"fiufit-users/internal/repositories"
	"fiufit-users/pkg/payments"
)

// WalletService keeps the wallet of each user and logs the transfers the payments service accepts.
type WalletService struct {
	wallets  repositories.WalletRepository
	users    repositories.UserRepository
	payments PaymentsGateway
}

// NewWalletService creates a new WalletService.
func NewWalletService(wallets repositories.WalletRepository, users repositories.UserRepository, gateway PaymentsGateway) *WalletService {
	return &WalletService{
		wallets:  wallets,
		users:    users,
		payments: gateway,
	}
}

// Create opens a wallet for userID.
func (s *WalletService) Create(userID uint) (*models.Wallet, error) {
	issued, err := s.payments.CreateWallet()
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet for user %d: %w", userID, err)
	}
	wallet := &models.Wallet{UserID: userID, Address: issued.Address, PrivateKey: issued.PrivateKey}
	if err := s.wallets.Create(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// Get retrieves the wallet of userID.
func (s *WalletService) Get(userID uint) (*models.Wallet, error) {
	wallet, err := s.wallets.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return wallet, nil
}

// Balance returns the funds in the wallet of userID.
func (s *WalletService) Balance(userID uint) (float64, error) {
	wallet, err := s.Get(userID)
	if err != nil {
		return 0, err
	}
	return s.payments.Balance(wallet.Address)
}

// AddBalance credits the wallet of userID from the platform contract.
func (s *WalletService) AddBalance(userID uint, amount float64) error {
	wallet, err := s.Get(userID)
	if err != nil {
		return err
	}
	if err := s.payments.AddBalance(wallet.Address, amount); err != nil {
		return err
	}
	s.record(&models.Transaction{
		Kind:            models.TransactionBonus,
		ReceiverID:      &userID,
		ReceiverAddress: wallet.Address,
		Amount:          amount,
	})
	return nil
}

// Deposit moves funds from one user to a trainer.
func (s *WalletService) Deposit(req *models.DepositRequest) error {
	receiver, err := s.users.GetByID(req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if receiver.IsAthlete {
		return ErrInvalidReceiver
	}
	from, err := s.Get(req.SenderID)
	if err != nil {
		return err
	}
	to, err := s.Get(req.ReceiverID)
	if err != nil {
		return err
	}

	err = s.payments.Deposit(payments.Transfer{
		SenderKey:       from.PrivateKey,
		ReceiverAddress: to.Address,
		Amount:          req.Amount,
	})
	if err != nil {
		return err
	}
	s.record(&models.Transaction{
		Kind:            models.TransactionDeposit,
		SenderID:        &req.SenderID,
		ReceiverID:      &req.ReceiverID,
		ReceiverAddress: to.Address,
		Amount:          req.Amount,
	})
	return nil
}

// Extraction moves funds from a user's wallet to an external address.
func (s *WalletService) Extraction(req *models.ExtractionRequest) error {
	from, err := s.Get(req.SenderID)
	if err != nil {
		return err
	}
	err = s.payments.Extraction(payments.Transfer{
		SenderKey:       from.PrivateKey,
		ReceiverAddress: req.ReceiverAddress,
		Amount:          req.Amount,
	})
	if err != nil {
		return err
	}
	s.record(&models.Transaction{
		Kind:            models.TransactionExtraction,
		SenderID:        &req.SenderID,
		ReceiverAddress: req.ReceiverAddress,
		Amount:          req.Amount,
	})
	return nil
}

// Transactions returns one page of the transaction log.
func (s *WalletService) Transactions(offset, limit int) (*models.Page[models.Transaction], error) {
	offset, limit = normalizeWindow(offset, limit)
	txs, total, err := s.wallets.ListTransactions(offset, limit)
	if err != nil {
		return nil, err
	}
	return NewPage(txs, total, offset, limit), nil
}

// record logs a transfer that already happened. A logging failure does not undo it.
func (s *WalletService) record(tx *models.Transaction) {
	if err := s.wallets.RecordTransaction(tx); err != nil {
		log.Printf("Transfer accepted but not logged: %v", err)
	}
}
