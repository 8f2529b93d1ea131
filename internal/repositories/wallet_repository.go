package repositories

import "fiufit-users/internal/models"

// WalletRepository defines the interface for wallet and transaction data access.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByUserID(userID uint) (*models.Wallet, error)
	RecordTransaction(tx *models.Transaction) error
	ListTransactions(offset, limit int) ([]models.Transaction, int64, error)
}
