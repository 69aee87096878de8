package models

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address    string    `gorm:"type:varchar(42);not null;uniqueIndex"`
	PrivateKey string    `gorm:"type:varchar(255);not null"` // AES-GCM ciphertext, hex encoded
	WalletName string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time
}
