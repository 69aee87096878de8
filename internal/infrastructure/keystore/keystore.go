// Package keystore generates and derives account key material. Nothing in
// this package persists: storage is the ledger's job.
package keystore

import (
	"encoding/hex"
	"fmt"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	domainerrors "wallet-manager.backend/internal/domain/errors"
)

// MnemonicEntropyBits is the entropy size for 12-word mnemonics.
const MnemonicEntropyBits = 128

// BIP-44 derivation path constants for m/44'/60'/0'/0/0.
const (
	purposeBIP44 = bip32.FirstHardenedChild + 44
	coinTypeEth  = bip32.FirstHardenedChild + 60
	accountZero  = bip32.FirstHardenedChild
)

// Account holds derived key material. The mnemonic is only set for freshly
// generated accounts and must not outlive the creation response.
type Account struct {
	Address    string
	PrivateKey string
	Mnemonic   string
}

// Generate creates a fresh account from a new 12-word BIP-39 mnemonic,
// derived along the standard Ethereum path m/44'/60'/0'/0/0.
func Generate() (*Account, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}

	account, err := FromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	account.Mnemonic = mnemonic
	return account, nil
}

// FromMnemonic derives the first external account of a BIP-39 mnemonic.
func FromMnemonic(mnemonic string) (*Account, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	for _, idx := range []uint32{purposeBIP44, coinTypeEth, accountZero, 0, 0} {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", idx, err)
		}
	}

	return Import(hex.EncodeToString(privateKeyBytes(key)))
}

// Import derives the checksummed address for a caller-supplied private key.
// The key is accepted with or without a 0x prefix.
func Import(privateKey string) (*Account, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")

	priv, err := ethcrypto.HexToECDSA(normalized)
	if err != nil {
		return nil, domainerrors.ErrInvalidKey
	}

	return &Account{
		Address:    ethcrypto.PubkeyToAddress(priv.PublicKey).Hex(),
		PrivateKey: "0x" + normalized,
	}, nil
}

// privateKeyBytes strips the leading zero byte bip32 prepends to private keys.
func privateKeyBytes(key *bip32.Key) []byte {
	raw := key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}
