package main

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wallet-manager.backend/internal/config"
	"wallet-manager.backend/internal/infrastructure/blockchain"
	plog "wallet-manager.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origDialChain := dialChain
	origRunMigrations := runMigrations
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		dialChain = origDialChain
		runMigrations = origRunMigrations
		runServer = origRunServer
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "walletmanager",
			SSLMode:  "disable",
		},
		Redis: config.RedisConfig{
			URL:      "redis://localhost:6379",
			Password: "",
		},
		Blockchain: config.BlockchainConfig{
			RPCURL:  "http://localhost:8545",
			ChainID: 11155111,
		},
		Security: config.SecurityConfig{
			APIKeyHash:          "$2a$12$hash",
			WalletEncryptionKey: "0000000000000000000000000000000000000000000000000000000000000000",
		},
		Jobs: config.JobsConfig{
			ReconcileInterval:    time.Hour,
			StuckIntentThreshold: 5 * time.Minute,
		},
		App: config.AppConfig{Version: "1.0.0"},
	}
}

type stubBackend struct{}

func (stubBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) { return 0, nil }
func (stubBackend) SuggestGasPrice(context.Context) (*big.Int, error)             { return big.NewInt(1), nil }
func (stubBackend) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(0), nil
}
func (stubBackend) SendTransaction(context.Context, *types.Transaction) error { return nil }
func (stubBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, nil
}
func (stubBackend) Close() {}

func stubHooksForSuccess(t *testing.T) {
	t.Helper()
	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared"), &gorm.Config{})
	}
	dialChain = func(string, int64) (*blockchain.EVMClient, error) {
		return blockchain.NewEVMClientWithBackend(stubBackend{}, 11155111), nil
	}
	runServer = func(*gin.Engine, string) error { return nil }
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)
	initRedis = func(string, string) error { return errors.New("redis down") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_MigrationError(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)
	runMigrations = func(context.Context, *gorm.DB, string) error { return errors.New("migration failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected migration error")
	}
}

func TestRunMainProcess_ChainDialError(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)
	dialChain = func(string, int64) (*blockchain.EVMClient, error) {
		return nil, errors.New("dial failed")
	}

	if err := runMainProcess(); err == nil {
		t.Fatal("expected chain dial error")
	}
}

func TestRunMainProcess_BadEncryptionKey(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Security.WalletEncryptionKey = "too-short"
		return cfg
	}

	if err := runMainProcess(); err == nil {
		t.Fatal("expected encryptor init error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)
	stubHooksForSuccess(t)

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
