package keystore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	domainerrors "wallet-manager.backend/internal/domain/errors"
)

// Widely published throwaway development key, never funded on mainnet.
const (
	knownKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	knownAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestGenerate(t *testing.T) {
	account, err := Generate()
	require.NoError(t, err)

	require.Len(t, strings.Fields(account.Mnemonic), 12)
	require.True(t, bip39.IsMnemonicValid(account.Mnemonic))
	require.Len(t, account.Address, 42)
	require.True(t, strings.HasPrefix(account.Address, "0x"))
	require.True(t, strings.HasPrefix(account.PrivateKey, "0x"))
	require.Len(t, account.PrivateKey, 66)
}

func TestGenerate_Unique(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)
	require.NotEqual(t, a.Address, b.Address)
	require.NotEqual(t, a.Mnemonic, b.Mnemonic)
}

func TestFromMnemonic_Deterministic(t *testing.T) {
	account, err := Generate()
	require.NoError(t, err)

	rederived, err := FromMnemonic(account.Mnemonic)
	require.NoError(t, err)
	require.Equal(t, account.Address, rederived.Address)
	require.Equal(t, account.PrivateKey, rederived.PrivateKey)
	require.Empty(t, rederived.Mnemonic, "only Generate returns the mnemonic")
}

func TestFromMnemonic_Invalid(t *testing.T) {
	_, err := FromMnemonic("definitely not twelve valid bip39 words in a row here at all")
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	account, err := Import(knownKey)
	require.NoError(t, err)
	require.Equal(t, knownAddress, account.Address)
	require.Equal(t, "0x"+knownKey, account.PrivateKey)
}

func TestImport_NormalizesPrefixAndWhitespace(t *testing.T) {
	account, err := Import("  0x" + knownKey + " ")
	require.NoError(t, err)
	require.Equal(t, knownAddress, account.Address)
	require.Equal(t, "0x"+knownKey, account.PrivateKey)
}

func TestImport_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "zzzz", "0x1234", knownKey + "00"} {
		_, err := Import(key)
		require.ErrorIs(t, err, domainerrors.ErrInvalidKey, "key=%q", key)
	}
}
