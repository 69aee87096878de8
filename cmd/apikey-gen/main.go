package main

import (
	"flag"
	"fmt"
	"log"

	"wallet-manager.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHexFn  = crypto.GenerateRandomHex
	generateHashFn = crypto.HashAPIKey
	fatalfFn       = log.Fatalf

	hexLen = flag.Int("hex-len", 32, "random hex length (must be even)")
)

func main() {
	flag.Parse()

	if *hexLen <= 0 || *hexLen%2 != 0 {
		fatalfFn("invalid hex-len: %d (must be positive and even)", *hexLen)
	}

	apiKey, err := generateHexFn(*hexLen / 2)
	if err != nil {
		fatalfFn("failed to generate api key: %v", err)
	}

	hash, err := generateHashFn(apiKey)
	if err != nil {
		fatalfFn("failed to hash api key: %v", err)
	}

	printfFn("Generated API credentials\n")
	printfFn("API_KEY=%s\n", apiKey)
	printfFn("API_KEY_HASH=%s\n", hash)
	printfFn("\nGive API_KEY to the caller and put API_KEY_HASH in the server environment.\n")
}
