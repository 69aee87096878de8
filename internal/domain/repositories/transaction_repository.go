package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wallet-manager.backend/internal/domain/entities"
)

// TransactionRepository defines transaction data operations.
// The ledger store is the sole writer of transaction rows.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	// MarkBroadcast promotes a SUBMITTING intent row to PENDING with its hash.
	MarkBroadcast(ctx context.Context, id uuid.UUID, txHash string) error
	// SetOutcome writes the terminal status and the fee paid, in ether.
	SetOutcome(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, gasUsed decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWalletID(ctx context.Context, walletID uuid.UUID) error
	ListPending(ctx context.Context) ([]*entities.Transaction, error)
	ListStuckSubmitting(ctx context.Context, olderThan time.Time) ([]*entities.Transaction, error)
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*entities.Transaction, error)
	List(ctx context.Context) ([]*entities.Transaction, error)
}
