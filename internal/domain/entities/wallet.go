package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a custodied account keypair
type Wallet struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	PrivateKey string    `json:"private_key,omitempty"`
	WalletName string    `json:"wallet_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// WalletSummary is the listing view of a wallet with its live balance
type WalletSummary struct {
	Address    string          `json:"address"`
	WalletName string          `json:"wallet_name"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateWalletInput represents input for creating a wallet
type CreateWalletInput struct {
	WalletName string `json:"wallet_name" binding:"required"`
}

// ImportWalletInput represents input for importing an existing key
type ImportWalletInput struct {
	PrivateKey string `json:"private_key" binding:"required"`
	WalletName string `json:"wallet_name" binding:"required"`
}

// NewWalletOutput is returned once at creation time. The mnemonic is never
// persisted; this is the only moment it leaves the process.
type NewWalletOutput struct {
	Address        string `json:"address"`
	PrivateKey     string `json:"private_key"`
	WalletName     string `json:"wallet_name"`
	MnemonicPhrase string `json:"mnemonic_phrase,omitempty"`
}
