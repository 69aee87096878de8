package usecases

import (
	"context"
	"math/big"

	"wallet-manager.backend/internal/infrastructure/blockchain"
)

// ChainGateway is the stateless oracle consulted for everything on-chain.
// Implemented by blockchain.EVMClient; stubbed in tests.
type ChainGateway interface {
	GetNonce(ctx context.Context, address string) (uint64, error)
	GetGasPrice(ctx context.Context) (*big.Int, error)
	GetBalance(ctx context.Context, address string) (*big.Int, error)
	SendTransfer(ctx context.Context, to string, amountWei *big.Int, privateKey string, nonce uint64, gasPrice *big.Int) (string, error)
	GetReceipt(ctx context.Context, txHash string) (*blockchain.Receipt, error)
}
