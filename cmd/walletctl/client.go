package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// apiClient is a thin wrapper over the wallet manager HTTP API.
type apiClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newAPIClient(baseURL, apiKey string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type walletSummary struct {
	Address    string          `json:"address"`
	WalletName string          `json:"wallet_name"`
	Balance    decimal.Decimal `json:"balance"`
}

type walletDetail struct {
	Address    string          `json:"address"`
	PrivateKey string          `json:"private_key"`
	WalletName string          `json:"wallet_name"`
	Balance    decimal.Decimal `json:"balance"`
}

type newWallet struct {
	Address        string `json:"address"`
	PrivateKey     string `json:"private_key"`
	WalletName     string `json:"wallet_name"`
	MnemonicPhrase string `json:"mnemonic_phrase,omitempty"`
}

type transactionRow struct {
	ID          uuid.UUID       `json:"id"`
	TxHash      string          `json:"tx_hash"`
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Amount      decimal.Decimal `json:"amount"`
	GasUsed     *string         `json:"gas_used"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// apiError carries the server's error body so the UI can show it verbatim.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Body)
}

func (c *apiClient) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return &apiError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func (c *apiClient) Version() (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	if err := c.do(http.MethodGet, "/version", nil, &out); err != nil {
		return "", err
	}
	return out.Version, nil
}

func (c *apiClient) ListWallets() ([]walletSummary, error) {
	var out []walletSummary
	if err := c.do(http.MethodGet, "/wallets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) CreateWallet(name string) (*newWallet, error) {
	var out newWallet
	if err := c.do(http.MethodPost, "/wallet/create", map[string]string{"wallet_name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) ImportWallet(name, privateKey string) (*newWallet, error) {
	var out newWallet
	body := map[string]string{"wallet_name": name, "private_key": privateKey}
	if err := c.do(http.MethodPost, "/wallet/import", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) GetWallet(address string) (*walletDetail, error) {
	var out walletDetail
	if err := c.do(http.MethodGet, "/wallet/"+address, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) DeleteWallet(address string) error {
	return c.do(http.MethodDelete, "/wallet/"+address, nil, nil)
}

func (c *apiClient) ListWalletTransactions(address string) ([]transactionRow, error) {
	var out []transactionRow
	if err := c.do(http.MethodGet, "/wallet/"+address+"/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type sendRequest struct {
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Amount      decimal.Decimal `json:"amount"`
	PrivateKey  string          `json:"private_key"`
}

func (c *apiClient) Send(req sendRequest) (string, error) {
	var out struct {
		TxHash string `json:"tx_hash"`
	}
	if err := c.do(http.MethodPost, "/wallet/send", req, &out); err != nil {
		return "", err
	}
	return out.TxHash, nil
}
