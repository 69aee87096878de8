package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wallet-manager.backend/internal/config"
	"wallet-manager.backend/internal/infrastructure/blockchain"
	"wallet-manager.backend/internal/infrastructure/jobs"
	"wallet-manager.backend/internal/infrastructure/repositories"
	"wallet-manager.backend/internal/interfaces/http/handlers"
	"wallet-manager.backend/internal/interfaces/http/middleware"
	"wallet-manager.backend/internal/usecases"
	"wallet-manager.backend/pkg/crypto"
	"wallet-manager.backend/pkg/logger"
	"wallet-manager.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	dialChain = func(rpcURL string, chainID int64) (*blockchain.EVMClient, error) {
		return blockchain.NewEVMClient(rpcURL, chainID)
	}
	runMigrations = repositories.Migrate
	runServer     = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not available: %w", err)
	}
	log.Println("✅ Connected to PostgreSQL via GORM")

	if err := runMigrations(context.Background(), db, cfg.App.Version); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Connect to the EVM node
	chainClient, err := dialChain(cfg.Blockchain.RPCURL, cfg.Blockchain.ChainID)
	if err != nil {
		return fmt.Errorf("failed to connect to rpc node: %w", err)
	}
	defer chainClient.Close()
	logger.Info(context.Background(), "Connected to EVM node",
		zap.String("rpc_url", cfg.Blockchain.RPCURL),
		zap.Int64("chain_id", cfg.Blockchain.ChainID))

	// Private key encryption at rest
	encryptor, err := crypto.NewEncryptor(cfg.Security.WalletEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize wallet encryptor: %w", err)
	}

	// Initialize repositories
	walletRepo := repositories.NewWalletRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	walletUsecase := usecases.NewWalletUsecase(walletRepo, txRepo, uow, chainClient, encryptor)
	transferUsecase := usecases.NewTransferUsecase(walletRepo, txRepo, chainClient, cfg.Jobs.StuckIntentThreshold)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	transactionHandler := handlers.NewTransactionHandler(transferUsecase)
	versionHandler := handlers.NewVersionHandler(cfg.App.Version)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconcileJob := jobs.NewReconcileJob(transferUsecase, cfg.Jobs.ReconcileInterval)
	go reconcileJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		walletHandler:      walletHandler,
		transactionHandler: transactionHandler,
		versionHandler:     versionHandler,
		authMiddleware:     middleware.APIKeyAuth(cfg.Security.APIKeyHash),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		reconcileJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Wallet Manager starting on port %s", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
