package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// TransactionStatus represents the lifecycle state of a transfer
type TransactionStatus string

const (
	// StatusSubmitting marks an intent row persisted before broadcast.
	StatusSubmitting TransactionStatus = "SUBMITTING"
	// StatusPending marks a broadcast transaction awaiting a receipt.
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// Terminal reports whether the status admits no further transitions.
func (s TransactionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Transaction represents a recorded transfer submission
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	WalletID    uuid.UUID         `json:"wallet_id"`
	TxHash      string            `json:"tx_hash"`
	FromAddress string            `json:"from_address"`
	ToAddress   string            `json:"to_address"`
	Amount      decimal.Decimal   `json:"amount"`
	GasUsed     null.String       `json:"gas_used"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SendInput represents input for submitting a transfer
type SendInput struct {
	FromAddress string          `json:"from_address" binding:"required"`
	ToAddress   string          `json:"to_address" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PrivateKey  string          `json:"private_key" binding:"required"`
}
