package repositories

import (
	"context"

	"github.com/google/uuid"
	"wallet-manager.backend/internal/domain/entities"
)

// WalletRepository defines wallet data operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)
	GetByAddress(ctx context.Context, address string) (*entities.Wallet, error)
	List(ctx context.Context) ([]*entities.Wallet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
