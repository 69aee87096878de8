package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Blockchain BlockchainConfig
	Security   SecurityConfig
	Jobs       JobsConfig
	App        AppConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// BlockchainConfig holds the chain node endpoint and signing chain id
type BlockchainConfig struct {
	RPCURL  string
	ChainID int64
}

// SecurityConfig holds the API key hash and wallet encryption key
type SecurityConfig struct {
	APIKeyHash          string
	WalletEncryptionKey string
}

// JobsConfig holds background job tuning
type JobsConfig struct {
	ReconcileInterval    time.Duration
	StuckIntentThreshold time.Duration
}

// AppConfig holds application metadata
type AppConfig struct {
	Version string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "walletmanager"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Blockchain: BlockchainConfig{
			RPCURL:  getEnv("ETH_RPC_URL", "https://ethereum-sepolia-rpc.publicnode.com"),
			ChainID: getEnvAsInt64("CHAIN_ID", 11155111),
		},
		Security: SecurityConfig{
			APIKeyHash:          getEnv("API_KEY_HASH", ""),
			WalletEncryptionKey: getEnv("WALLET_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
		Jobs: JobsConfig{
			ReconcileInterval:    getEnvAsDuration("RECONCILE_INTERVAL", 30*time.Second),
			StuckIntentThreshold: getEnvAsDuration("STUCK_INTENT_THRESHOLD", 5*time.Minute),
		},
		App: AppConfig{
			Version: getEnv("APP_VERSION", "1.0.0"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
