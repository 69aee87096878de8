package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"wallet-manager.backend/internal/domain/entities"
	domainerrors "wallet-manager.backend/internal/domain/errors"
	"wallet-manager.backend/internal/interfaces/http/response"
	"wallet-manager.backend/internal/usecases"
)

type walletService interface {
	CreateWallet(ctx context.Context, input *entities.CreateWalletInput) (*entities.NewWalletOutput, error)
	ImportWallet(ctx context.Context, input *entities.ImportWalletInput) (*entities.NewWalletOutput, error)
	GetWallet(ctx context.Context, address string) (*entities.Wallet, error)
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	ListWallets(ctx context.Context) ([]*entities.WalletSummary, error)
	DeleteWallet(ctx context.Context, address string) error
}

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	walletUsecase walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// CreateWallet generates and stores a fresh wallet
// POST /wallet/create
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var input entities.CreateWalletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	out, err := h.walletUsecase.CreateWallet(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, out)
}

// ImportWallet stores a wallet for a caller-supplied key
// POST /wallet/import
func (h *WalletHandler) ImportWallet(c *gin.Context) {
	var input entities.ImportWalletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	out, err := h.walletUsecase.ImportWallet(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, out)
}

// GetWallet returns a wallet with its key and live balance
// GET /wallet/:address
func (h *WalletHandler) GetWallet(c *gin.Context) {
	address := c.Param("address")

	wallet, err := h.walletUsecase.GetWallet(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	balance, err := h.walletUsecase.GetBalance(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"address":     wallet.Address,
		"private_key": wallet.PrivateKey,
		"wallet_name": wallet.WalletName,
		"balance":     balance,
		"created_at":  wallet.CreatedAt,
	})
}

// ListWallets lists all wallets with balances
// GET /wallets
func (h *WalletHandler) ListWallets(c *gin.Context) {
	wallets, err := h.walletUsecase.ListWallets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if wallets == nil {
		wallets = []*entities.WalletSummary{}
	}
	response.Success(c, http.StatusOK, wallets)
}

// DeleteWallet removes a wallet and its transactions
// DELETE /wallet/:address
func (h *WalletHandler) DeleteWallet(c *gin.Context) {
	address := c.Param("address")

	if err := h.walletUsecase.DeleteWallet(c.Request.Context(), address); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Wallet successfully deleted"})
}
