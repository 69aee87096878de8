package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"wallet-manager.backend/internal/domain/entities"
	domainerrors "wallet-manager.backend/internal/domain/errors"
	"wallet-manager.backend/internal/interfaces/http/response"
	"wallet-manager.backend/internal/usecases"
)

type transferService interface {
	Submit(ctx context.Context, input *entities.SendInput) (string, error)
	ListTransactions(ctx context.Context) ([]*entities.Transaction, error)
	ListWalletTransactions(ctx context.Context, address string) ([]*entities.Transaction, error)
}

// TransactionHandler handles transfer endpoints
type TransactionHandler struct {
	transferUsecase transferService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transferUsecase *usecases.TransferUsecase) *TransactionHandler {
	return &TransactionHandler{transferUsecase: transferUsecase}
}

// Send signs, broadcasts and records a transfer
// POST /wallet/send
func (h *TransactionHandler) Send(c *gin.Context) {
	var input entities.SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	txHash, err := h.transferUsecase.Submit(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tx_hash": txHash})
}

// ListTransactions returns all transactions after a reconciliation pass
// GET /transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.transferUsecase.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if txs == nil {
		txs = []*entities.Transaction{}
	}
	response.Success(c, http.StatusOK, txs)
}

// ListWalletTransactions returns one wallet's transactions after a
// reconciliation pass
// GET /wallet/:address/transactions
func (h *TransactionHandler) ListWalletTransactions(c *gin.Context) {
	address := c.Param("address")

	txs, err := h.transferUsecase.ListWalletTransactions(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	if txs == nil {
		txs = []*entities.Transaction{}
	}
	response.Success(c, http.StatusOK, txs)
}
