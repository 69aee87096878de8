package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	WalletID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	TxHash      string              `gorm:"type:varchar(66);index"` // empty while SUBMITTING
	FromAddress string              `gorm:"type:varchar(42);not null"`
	ToAddress   string              `gorm:"type:varchar(42);not null"`
	Amount      decimal.Decimal     `gorm:"type:decimal(18,8);not null"`
	GasUsed     decimal.NullDecimal `gorm:"type:decimal(18,8)"`
	Status      string              `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time

	Wallet Wallet `gorm:"foreignKey:WalletID"`
}
