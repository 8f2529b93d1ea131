package models

import "time"

// Wallet ties a user to the address and key issued by the payments service.
type Wallet struct {
	UserID     uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Address    string `json:"address" gorm:"type:varchar(255)"`
	PrivateKey string `json:"privateKey" gorm:"type:varchar(255)"`
}

// Transaction kinds.
const (
	TransactionDeposit    = "deposit"
	TransactionExtraction = "extraction"
	TransactionBonus      = "bonus"
)

// Transaction logs a transfer that the payments service accepted.
type Transaction struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Kind            string    `json:"kind" gorm:"type:varchar(20);not null"`
	SenderID        *uint     `json:"sender_id"`
	ReceiverID      *uint     `json:"receiver_id"`
	ReceiverAddress string    `json:"receiver_address"`
	Amount          float64   `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`
}

// DepositRequest moves money from an athlete's wallet to a trainer's wallet.
type DepositRequest struct {
	SenderID   uint    `json:"sender_id" validate:"required"`
	ReceiverID uint    `json:"receiver_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// ExtractionRequest moves money from a user's wallet to an external address.
type ExtractionRequest struct {
	SenderID        uint    `json:"sender_id" validate:"required"`
	ReceiverAddress string  `json:"receiver_address" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}

// BalanceBonus credits a user's wallet from the platform contract.
type BalanceBonus struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
