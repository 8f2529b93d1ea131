package repositories

import (
	"errors"
	"fmt"

	"fiufit-users/internal/models"

	"gorm.io/gorm"
)

// GORMWalletRepository is a GORM implementation of WalletRepository.
type GORMWalletRepository struct {
	db *gorm.DB
}

// NewGORMWalletRepository creates a new instance of GORMWalletRepository.
func NewGORMWalletRepository(db *gorm.DB) *GORMWalletRepository {
	return &GORMWalletRepository{
		db: db,
	}
}

// Create stores the wallet issued for a user.
func (r *GORMWalletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("wallet for user %d: %w", wallet.UserID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetByUserID retrieves the wallet owned by a user.
func (r *GORMWalletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wallet for user %d not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet for user %d: %w", userID, err)
	}
	return &wallet, nil
}

// RecordTransaction appends an entry to the transaction log.
func (r *GORMWalletRepository) RecordTransaction(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to record %s transaction: %w", tx.Kind, err)
	}
	return nil
}

// ListTransactions returns one page of the transaction log in insertion order.
func (r *GORMWalletRepository) ListTransactions(offset, limit int) ([]models.Transaction, int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	txs := []models.Transaction{}
	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&txs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}
