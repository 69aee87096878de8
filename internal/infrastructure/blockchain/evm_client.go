package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// TransferGasLimit is the fixed gas limit for a plain value transfer.
const TransferGasLimit = 21000

var dialEVMClient = func(rpcURL string) (rpcBackend, error) {
	return ethclient.Dial(rpcURL)
}

// rpcBackend is the subset of ethclient.Client the gateway uses.
// Extracted so unit tests can run without network sockets.
type rpcBackend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// Receipt is the chain-confirmed outcome of a mined transaction.
type Receipt struct {
	Success           bool
	GasUsed           uint64
	EffectiveGasPrice *big.Int
}

// EVMClient is the single component that talks to the remote chain node.
// It holds no state beyond the connection and the signing chain id.
type EVMClient struct {
	client  rpcBackend
	chainID *big.Int
	rpcURL  string
}

// NewEVMClient dials the node. The chain id is configured, not fetched, so a
// misconfigured endpoint cannot silently sign for the wrong network.
func NewEVMClient(rpcURL string, chainID int64) (*EVMClient, error) {
	client, err := dialEVMClient(rpcURL)
	if err != nil {
		return nil, err
	}

	return &EVMClient{
		client:  client,
		chainID: big.NewInt(chainID),
		rpcURL:  rpcURL,
	}, nil
}

// NewEVMClientWithBackend creates a client over an injected backend.
// Intended for unit tests where RPC sockets are unavailable.
func NewEVMClientWithBackend(backend rpcBackend, chainID int64) *EVMClient {
	return &EVMClient{client: backend, chainID: big.NewInt(chainID)}
}

// ChainID returns the signing chain id
func (c *EVMClient) ChainID() *big.Int {
	return c.chainID
}

// GetNonce returns the next unused transaction counter for the account,
// as observed by the node's pending view.
func (c *EVMClient) GetNonce(ctx context.Context, address string) (uint64, error) {
	return c.client.PendingNonceAt(ctx, common.HexToAddress(address))
}

// GetGasPrice returns the network-suggested gas price in wei
func (c *EVMClient) GetGasPrice(ctx context.Context) (*big.Int, error) {
	return c.client.SuggestGasPrice(ctx)
}

// GetBalance gets the confirmed native balance of an address in wei
func (c *EVMClient) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	return c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
}

// SendTransfer signs and broadcasts a fixed-gas value transfer and returns
// the submission hash. The private key is parsed per call and not retained.
func (c *EVMClient) SendTransfer(ctx context.Context, to string, amountWei *big.Int, privateKey string, nonce uint64, gasPrice *big.Int) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address: %s", to)
	}

	priv, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid private key")
	}

	tx := types.NewTransaction(nonce, common.HexToAddress(to), amountWei, TransferGasLimit, gasPrice, nil)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), priv)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return "", err
	}

	return signed.Hash().Hex(), nil
}

// GetReceipt returns the receipt for a mined transaction, or nil while the
// submission is still in the mempool.
func (c *EVMClient) GetReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Receipt{
		Success:           receipt.Status == types.ReceiptStatusSuccessful,
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: receipt.EffectiveGasPrice,
	}, nil
}

// Close closes the client connection
func (c *EVMClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
