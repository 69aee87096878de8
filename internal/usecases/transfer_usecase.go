package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"wallet-manager.backend/internal/domain/entities"
	domainerrors "wallet-manager.backend/internal/domain/errors"
	"wallet-manager.backend/internal/domain/repositories"
	"wallet-manager.backend/pkg/logger"
	"wallet-manager.backend/pkg/metrics"
)

// TransferUsecase drives the transaction lifecycle: submit a signed transfer
// and later converge recorded rows with chain-confirmed outcomes.
type TransferUsecase struct {
	walletRepo     repositories.WalletRepository
	txRepo         repositories.TransactionRepository
	gateway        ChainGateway
	locks          *addressLocks
	stuckThreshold time.Duration
}

// NewTransferUsecase creates a new transfer usecase
func NewTransferUsecase(
	walletRepo repositories.WalletRepository,
	txRepo repositories.TransactionRepository,
	gateway ChainGateway,
	stuckThreshold time.Duration,
) *TransferUsecase {
	return &TransferUsecase{
		walletRepo:     walletRepo,
		txRepo:         txRepo,
		gateway:        gateway,
		locks:          newAddressLocks(),
		stuckThreshold: stuckThreshold,
	}
}

// Submit validates, signs and broadcasts a transfer, then records it as
// PENDING. The intent row is persisted before broadcast so a crash in the
// window between broadcast and persist leaves a visible SUBMITTING anomaly
// instead of a silently lost submission.
func (u *TransferUsecase) Submit(ctx context.Context, input *entities.SendInput) (string, error) {
	if input.Amount.IsNegative() {
		return "", domainerrors.BadRequest("amount must not be negative")
	}

	wallet, err := u.walletRepo.GetByAddress(ctx, input.FromAddress)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.ErrWalletNotFound
		}
		return "", err
	}

	// The key authorizes the spend; make sure it actually controls the
	// claimed sender before anything touches the chain.
	account, err := importAccount(input.PrivateKey)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(account.Address, wallet.Address) {
		return "", domainerrors.ErrAddressMismatch
	}

	// Serialize nonce-fetch-then-broadcast per sender. Without this, two
	// concurrent submissions read the same nonce and the node rejects one.
	lock := u.locks.For(wallet.Address)
	lock.Lock()
	defer lock.Unlock()

	intent := &entities.Transaction{
		WalletID:    wallet.ID,
		FromAddress: wallet.Address,
		ToAddress:   input.ToAddress,
		Amount:      input.Amount,
		Status:      entities.StatusSubmitting,
	}
	if err := u.txRepo.Create(ctx, intent); err != nil {
		return "", err
	}

	hash, err := u.broadcast(ctx, intent, input)
	if err != nil {
		// The network never accepted this submission; the intent row has
		// nothing to reconcile against and is removed.
		if delErr := u.txRepo.Delete(ctx, intent.ID); delErr != nil {
			logger.Error(ctx, "failed to remove rejected intent row",
				zap.String("id", intent.ID.String()), zap.Error(delErr))
		}
		metrics.TransfersSubmitted.WithLabelValues("rejected").Inc()
		return "", domainerrors.SubmissionError(err)
	}

	if err := u.txRepo.MarkBroadcast(ctx, intent.ID, hash); err != nil {
		// Broadcast succeeded but the record update failed. The row stays
		// SUBMITTING and the sweep will flag it as a stuck intent.
		logger.Error(ctx, "broadcast accepted but record update failed",
			zap.String("tx_hash", hash), zap.Error(err))
	}

	metrics.TransfersSubmitted.WithLabelValues("accepted").Inc()
	logger.Info(ctx, "transfer broadcast",
		zap.String("from", wallet.Address),
		zap.String("to", input.ToAddress),
		zap.String("tx_hash", hash))
	return hash, nil
}

func (u *TransferUsecase) broadcast(ctx context.Context, intent *entities.Transaction, input *entities.SendInput) (string, error) {
	nonce, err := u.gateway.GetNonce(ctx, intent.FromAddress)
	if err != nil {
		return "", err
	}

	gasPrice, err := u.gateway.GetGasPrice(ctx)
	if err != nil {
		return "", err
	}

	return u.gateway.SendTransfer(ctx, input.ToAddress, EtherToWei(input.Amount), input.PrivateKey, nonce, gasPrice)
}

// Reconcile advances every PENDING row whose receipt is available and returns
// the number of rows updated. A failure on one row never blocks the rest.
func (u *TransferUsecase) Reconcile(ctx context.Context) (int, error) {
	pending, err := u.txRepo.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, row := range pending {
		receipt, err := u.gateway.GetReceipt(ctx, row.TxHash)
		if err != nil {
			logger.Warn(ctx, "receipt lookup failed",
				zap.String("tx_hash", row.TxHash), zap.Error(err))
			metrics.ReconcileErrors.Inc()
			continue
		}
		if receipt == nil {
			// Still in the mempool; not an error.
			continue
		}

		status := entities.StatusSuccess
		if !receipt.Success {
			status = entities.StatusFailed
		}
		fee := FeeInEther(receipt.GasUsed, receipt.EffectiveGasPrice)

		if err := u.txRepo.SetOutcome(ctx, row.ID, status, fee); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				// A concurrent sweep won the race; same terminal state either way.
				continue
			}
			logger.Warn(ctx, "failed to record outcome",
				zap.String("tx_hash", row.TxHash), zap.Error(err))
			metrics.ReconcileErrors.Inc()
			continue
		}

		metrics.ReconciledRows.WithLabelValues(string(status)).Inc()
		updated++
	}

	u.flagStuckIntents(ctx)
	return updated, nil
}

// flagStuckIntents surfaces rows that never left SUBMITTING: a crash between
// broadcast and persist leaves them hashless, so they cannot be reconciled
// automatically and need operator attention.
func (u *TransferUsecase) flagStuckIntents(ctx context.Context) {
	stuck, err := u.txRepo.ListStuckSubmitting(ctx, time.Now().Add(-u.stuckThreshold))
	if err != nil {
		logger.Warn(ctx, "stuck intent scan failed", zap.Error(err))
		return
	}

	metrics.StuckIntents.Set(float64(len(stuck)))
	for _, row := range stuck {
		logger.Warn(ctx, "transfer intent stuck without a hash",
			zap.String("id", row.ID.String()),
			zap.String("from", row.FromAddress),
			zap.Time("created_at", row.CreatedAt))
	}
}

// ListTransactions reconciles pending rows and returns all transactions.
// Sweep failures are logged, never surfaced to the listing caller.
func (u *TransferUsecase) ListTransactions(ctx context.Context) ([]*entities.Transaction, error) {
	if _, err := u.Reconcile(ctx); err != nil {
		logger.Warn(ctx, "reconciliation sweep failed", zap.Error(err))
	}
	return u.txRepo.List(ctx)
}

// ListWalletTransactions reconciles pending rows and returns one wallet's
// transactions, newest first.
func (u *TransferUsecase) ListWalletTransactions(ctx context.Context, address string) ([]*entities.Transaction, error) {
	wallet, err := u.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, err
	}

	if _, err := u.Reconcile(ctx); err != nil {
		logger.Warn(ctx, "reconciliation sweep failed", zap.Error(err))
	}
	return u.txRepo.ListByWalletID(ctx, wallet.ID)
}
