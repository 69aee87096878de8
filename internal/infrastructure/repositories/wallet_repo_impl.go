package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wallet-manager.backend/internal/domain/entities"
	domainerrors "wallet-manager.backend/internal/domain/errors"
	"wallet-manager.backend/internal/infrastructure/models"
)

// WalletRepository implements wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet. The address carries a unique index; a second
// wallet with the same address fails with ErrAlreadyExists.
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = time.Now()
	}

	m := &models.Wallet{
		ID:         wallet.ID,
		Address:    wallet.Address,
		PrivateKey: wallet.PrivateKey,
		WalletName: wallet.WalletName,
		CreatedAt:  wallet.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWalletEntity(&m), nil
}

// GetByAddress gets a wallet by its account address
func (r *WalletRepository) GetByAddress(ctx context.Context, address string) (*entities.Wallet, error) {
	var m models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("address = ?", address).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWalletEntity(&m), nil
}

// List returns all wallets, oldest first
func (r *WalletRepository) List(ctx context.Context) ([]*entities.Wallet, error) {
	var ms []models.Wallet
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	wallets := make([]*entities.Wallet, 0, len(ms))
	for i := range ms {
		wallets = append(wallets, toWalletEntity(&ms[i]))
	}
	return wallets, nil
}

// Delete removes a wallet row
func (r *WalletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Wallet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toWalletEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:         m.ID,
		Address:    m.Address,
		PrivateKey: m.PrivateKey,
		WalletName: m.WalletName,
		CreatedAt:  m.CreatedAt,
	}
}

// isUniqueViolation matches both postgres and sqlite duplicate-key errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
