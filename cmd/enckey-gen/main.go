package main

import (
	"fmt"
	"log"

	"wallet-manager.backend/pkg/crypto"
)

var (
	printfFn      = fmt.Printf
	generateHexFn = crypto.GenerateRandomHex
	fatalfFn      = log.Fatalf
)

// Emits a fresh 32-byte key for WALLET_ENCRYPTION_KEY.
func main() {
	key, err := generateHexFn(32)
	if err != nil {
		fatalfFn("failed to generate encryption key: %v", err)
	}

	printfFn("WALLET_ENCRYPTION_KEY=%s\n", key)
}
