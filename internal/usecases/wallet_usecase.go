package usecases

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"wallet-manager.backend/internal/domain/entities"
	domainerrors "wallet-manager.backend/internal/domain/errors"
	"wallet-manager.backend/internal/domain/repositories"
	"wallet-manager.backend/internal/infrastructure/keystore"
	"wallet-manager.backend/pkg/crypto"
	"wallet-manager.backend/pkg/logger"
)

var (
	generateAccount = keystore.Generate
	importAccount   = keystore.Import
)

// WalletUsecase handles wallet custody business logic
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	txRepo     repositories.TransactionRepository
	uow        repositories.UnitOfWork
	gateway    ChainGateway
	encryptor  *crypto.Encryptor
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	walletRepo repositories.WalletRepository,
	txRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
	gateway ChainGateway,
	encryptor *crypto.Encryptor,
) *WalletUsecase {
	return &WalletUsecase{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		uow:        uow,
		gateway:    gateway,
		encryptor:  encryptor,
	}
}

// CreateWallet generates a fresh keypair from a new mnemonic and persists it.
// The mnemonic is returned exactly once and never stored; if persistence
// fails the derived material is not returned either.
func (u *WalletUsecase) CreateWallet(ctx context.Context, input *entities.CreateWalletInput) (*entities.NewWalletOutput, error) {
	account, err := generateAccount()
	if err != nil {
		return nil, err
	}

	if err := u.persist(ctx, account, input.WalletName); err != nil {
		return nil, err
	}

	return &entities.NewWalletOutput{
		Address:        account.Address,
		PrivateKey:     account.PrivateKey,
		WalletName:     input.WalletName,
		MnemonicPhrase: account.Mnemonic,
	}, nil
}

// ImportWallet derives the address for a caller-supplied key and persists it.
// A key whose address is already custodied is rejected: address uniqueness is
// the only identity a wallet has.
func (u *WalletUsecase) ImportWallet(ctx context.Context, input *entities.ImportWalletInput) (*entities.NewWalletOutput, error) {
	account, err := importAccount(input.PrivateKey)
	if err != nil {
		return nil, err
	}

	if err := u.persist(ctx, account, input.WalletName); err != nil {
		return nil, err
	}

	return &entities.NewWalletOutput{
		Address:    account.Address,
		PrivateKey: account.PrivateKey,
		WalletName: input.WalletName,
	}, nil
}

func (u *WalletUsecase) persist(ctx context.Context, account *keystore.Account, name string) error {
	encrypted, err := u.encryptor.Encrypt(account.PrivateKey)
	if err != nil {
		return err
	}

	return u.walletRepo.Create(ctx, &entities.Wallet{
		Address:    account.Address,
		PrivateKey: encrypted,
		WalletName: name,
	})
}

// GetWallet returns a wallet with its decrypted key and live balance summary
func (u *WalletUsecase) GetWallet(ctx context.Context, address string) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, err
	}

	key, err := u.encryptor.Decrypt(wallet.PrivateKey)
	if err != nil {
		return nil, err
	}
	wallet.PrivateKey = key

	return wallet, nil
}

// GetBalance returns the confirmed balance of a custodied wallet in ether
func (u *WalletUsecase) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if _, err := u.walletRepo.GetByAddress(ctx, address); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return decimal.Zero, domainerrors.ErrWalletNotFound
		}
		return decimal.Zero, err
	}

	wei, err := u.gateway.GetBalance(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}
	return WeiToEther(wei), nil
}

// ListWallets returns all wallets with their live balances. A wallet whose
// balance lookup fails is listed with balance zero rather than dropped.
func (u *WalletUsecase) ListWallets(ctx context.Context) ([]*entities.WalletSummary, error) {
	wallets, err := u.walletRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entities.WalletSummary, 0, len(wallets))
	for _, w := range wallets {
		summary := &entities.WalletSummary{
			Address:    w.Address,
			WalletName: w.WalletName,
			CreatedAt:  w.CreatedAt,
		}
		wei, err := u.gateway.GetBalance(ctx, w.Address)
		if err != nil {
			logger.Warn(ctx, "balance lookup failed", zap.String("address", w.Address), zap.Error(err))
		} else {
			summary.Balance = WeiToEther(wei)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// DeleteWallet removes a wallet and all of its transactions atomically
func (u *WalletUsecase) DeleteWallet(ctx context.Context, address string) error {
	wallet, err := u.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrWalletNotFound
		}
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.txRepo.DeleteByWalletID(txCtx, wallet.ID); err != nil {
			return err
		}
		return u.walletRepo.Delete(txCtx, wallet.ID)
	})
}
