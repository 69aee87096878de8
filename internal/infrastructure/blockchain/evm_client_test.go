package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

// Widely published throwaway development key, never funded on mainnet.
const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testTo      = "0x2546BcD3c84621e976D8185a91A922aE77ECEc30"
)

type fakeBackend struct {
	nonce      uint64
	nonceErr   error
	gasPrice   *big.Int
	balance    *big.Int
	sent       *types.Transaction
	sendErr    error
	receipt    *types.Receipt
	receiptErr error
	closed     bool
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return f.nonce, f.nonceErr
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return f.gasPrice, nil
}

func (f *fakeBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = tx
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return f.receipt, f.receiptErr
}

func (f *fakeBackend) Close() { f.closed = true }

func TestEVMClient_Reads(t *testing.T) {
	backend := &fakeBackend{
		nonce:    42,
		gasPrice: big.NewInt(2_000_000_000),
		balance:  big.NewInt(1_000_000_000_000_000_000),
	}
	client := NewEVMClientWithBackend(backend, 11155111)
	ctx := context.Background()

	nonce, err := client.GetNonce(ctx, testAddress)
	require.NoError(t, err)
	require.EqualValues(t, 42, nonce)

	gasPrice, err := client.GetGasPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, backend.gasPrice, gasPrice)

	balance, err := client.GetBalance(ctx, testAddress)
	require.NoError(t, err)
	require.Equal(t, backend.balance, balance)

	require.EqualValues(t, 11155111, client.ChainID().Int64())
}

func TestSendTransfer_SignsAndBroadcasts(t *testing.T) {
	backend := &fakeBackend{}
	client := NewEVMClientWithBackend(backend, 11155111)

	amount := big.NewInt(500_000_000_000_000_000)
	hash, err := client.SendTransfer(context.Background(), testTo, amount, testKey, 7, big.NewInt(1_000_000_000))
	require.NoError(t, err)
	require.NotNil(t, backend.sent)
	require.Equal(t, backend.sent.Hash().Hex(), hash)

	require.EqualValues(t, 7, backend.sent.Nonce())
	require.Equal(t, common.HexToAddress(testTo), *backend.sent.To())
	require.Equal(t, amount, backend.sent.Value())
	require.EqualValues(t, TransferGasLimit, backend.sent.Gas())

	// EIP-155 signature binds the configured chain id.
	require.EqualValues(t, 11155111, backend.sent.ChainId().Int64())
	sender, err := types.Sender(types.NewEIP155Signer(big.NewInt(11155111)), backend.sent)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testAddress), sender)
}

func TestSendTransfer_AcceptsPrefixedKey(t *testing.T) {
	backend := &fakeBackend{}
	client := NewEVMClientWithBackend(backend, 1)

	_, err := client.SendTransfer(context.Background(), testTo, big.NewInt(1), "0x"+testKey, 0, big.NewInt(1))
	require.NoError(t, err)
}

func TestSendTransfer_InvalidRecipient(t *testing.T) {
	backend := &fakeBackend{}
	client := NewEVMClientWithBackend(backend, 1)

	_, err := client.SendTransfer(context.Background(), "not-an-address", big.NewInt(1), testKey, 0, big.NewInt(1))
	require.Error(t, err)
	require.Nil(t, backend.sent)
}

func TestSendTransfer_InvalidKey(t *testing.T) {
	backend := &fakeBackend{}
	client := NewEVMClientWithBackend(backend, 1)

	_, err := client.SendTransfer(context.Background(), testTo, big.NewInt(1), "zzzz", 0, big.NewInt(1))
	require.Error(t, err)
	require.Nil(t, backend.sent)
}

func TestSendTransfer_NodeRejection(t *testing.T) {
	backend := &fakeBackend{sendErr: errors.New("insufficient funds")}
	client := NewEVMClientWithBackend(backend, 1)

	_, err := client.SendTransfer(context.Background(), testTo, big.NewInt(1), testKey, 0, big.NewInt(1))
	require.ErrorContains(t, err, "insufficient funds")
}

func TestGetReceipt(t *testing.T) {
	backend := &fakeBackend{receipt: &types.Receipt{
		Status:            types.ReceiptStatusSuccessful,
		GasUsed:           21000,
		EffectiveGasPrice: big.NewInt(1_000_000_000),
	}}
	client := NewEVMClientWithBackend(backend, 1)

	receipt, err := client.GetReceipt(context.Background(), "0xabc")
	require.NoError(t, err)
	require.True(t, receipt.Success)
	require.EqualValues(t, 21000, receipt.GasUsed)
	require.Equal(t, big.NewInt(1_000_000_000), receipt.EffectiveGasPrice)
}

func TestGetReceipt_Reverted(t *testing.T) {
	backend := &fakeBackend{receipt: &types.Receipt{
		Status:            types.ReceiptStatusFailed,
		GasUsed:           21000,
		EffectiveGasPrice: big.NewInt(1),
	}}
	client := NewEVMClientWithBackend(backend, 1)

	receipt, err := client.GetReceipt(context.Background(), "0xabc")
	require.NoError(t, err)
	require.False(t, receipt.Success)
}

func TestGetReceipt_NotMinedYet(t *testing.T) {
	backend := &fakeBackend{receiptErr: ethereum.NotFound}
	client := NewEVMClientWithBackend(backend, 1)

	receipt, err := client.GetReceipt(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Nil(t, receipt)
}

func TestGetReceipt_RPCError(t *testing.T) {
	backend := &fakeBackend{receiptErr: errors.New("rpc timeout")}
	client := NewEVMClientWithBackend(backend, 1)

	_, err := client.GetReceipt(context.Background(), "0xabc")
	require.Error(t, err)
}

func TestClose(t *testing.T) {
	backend := &fakeBackend{}
	client := NewEVMClientWithBackend(backend, 1)
	client.Close()
	require.True(t, backend.closed)
}

func TestNewEVMClient_DialFailure(t *testing.T) {
	orig := dialEVMClient
	dialEVMClient = func(rpcURL string) (rpcBackend, error) {
		return nil, errors.New("dial tcp: connection refused")
	}
	defer func() { dialEVMClient = orig }()

	_, err := NewEVMClient("http://localhost:0", 1)
	require.Error(t, err)
}
