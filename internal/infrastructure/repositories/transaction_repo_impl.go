package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"wallet-manager.backend/internal/domain/entities"
	domainerrors "wallet-manager.backend/internal/domain/errors"
	"wallet-manager.backend/internal/infrastructure/models"
)

// TransactionRepository implements transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a transaction row
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	m := &models.Transaction{
		ID:          tx.ID,
		WalletID:    tx.WalletID,
		TxHash:      tx.TxHash,
		FromAddress: tx.FromAddress,
		ToAddress:   tx.ToAddress,
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTransactionEntity(&m), nil
}

// MarkBroadcast promotes a SUBMITTING intent to PENDING with its hash.
// Guarded on the current status so a replay cannot regress a terminal row.
func (r *TransactionRepository) MarkBroadcast(ctx context.Context, id uuid.UUID, txHash string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, string(entities.StatusSubmitting)).
		Updates(map[string]interface{}{
			"tx_hash": txHash,
			"status":  string(entities.StatusPending),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetOutcome writes the terminal status and fee. Only PENDING rows qualify:
// the transition is monotonic, so a racing sweep updating the same row is a
// harmless no-op for the loser.
func (r *TransactionRepository) SetOutcome(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, gasUsed decimal.Decimal) error {
	if !status.Terminal() {
		return domainerrors.ErrInvalidInput
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, string(entities.StatusPending)).
		Updates(map[string]interface{}{
			"status":   string(status),
			"gas_used": decimal.NullDecimal{Decimal: gasUsed, Valid: true},
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a transaction row
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{}).Error
}

// DeleteByWalletID removes all transactions of a wallet. Called inside the
// wallet-deletion unit of work.
func (r *TransactionRepository) DeleteByWalletID(ctx context.Context, walletID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Where("wallet_id = ?", walletID).Delete(&models.Transaction{}).Error
}

// ListPending returns all rows awaiting a receipt
func (r *TransactionRepository) ListPending(ctx context.Context) ([]*entities.Transaction, error) {
	return r.listWhere(ctx, "status = ?", string(entities.StatusPending))
}

// ListStuckSubmitting returns intent rows that never got a hash and are older
// than the given cutoff.
func (r *TransactionRepository) ListStuckSubmitting(ctx context.Context, olderThan time.Time) ([]*entities.Transaction, error) {
	return r.listWhere(ctx, "status = ? AND created_at < ?", string(entities.StatusSubmitting), olderThan)
}

// ListByWalletID returns a wallet's transactions, newest first
func (r *TransactionRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*entities.Transaction, error) {
	return r.listWhere(ctx, "wallet_id = ?", walletID)
}

// List returns all transactions, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]*entities.Transaction, error) {
	return r.listWhere(ctx, "1 = 1")
}

func (r *TransactionRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where(query, args...).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, toTransactionEntity(&ms[i]))
	}
	return txs, nil
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	var gasUsed null.String
	if m.GasUsed.Valid {
		gasUsed = null.StringFrom(m.GasUsed.Decimal.String())
	}

	return &entities.Transaction{
		ID:          m.ID,
		WalletID:    m.WalletID,
		TxHash:      m.TxHash,
		FromAddress: m.FromAddress,
		ToAddress:   m.ToAddress,
		Amount:      m.Amount,
		GasUsed:     gasUsed,
		Status:      entities.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
