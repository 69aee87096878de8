package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"wallet-manager.backend/internal/interfaces/http/handlers"
	"wallet-manager.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	walletHandler      *handlers.WalletHandler
	transactionHandler *handlers.TransactionHandler
	versionHandler     *handlers.VersionHandler
	authMiddleware     gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/")
	api.Use(d.authMiddleware)
	{
		// Wallet routes
		wallet := api.Group("/wallet")
		{
			wallet.POST("/create", d.walletHandler.CreateWallet)
			wallet.POST("/import", d.walletHandler.ImportWallet)
			wallet.POST("/send", middleware.IdempotencyMiddleware(), d.transactionHandler.Send)
			wallet.GET("/:address", d.walletHandler.GetWallet)
			wallet.GET("/:address/transactions", d.transactionHandler.ListWalletTransactions)
			wallet.DELETE("/:address", d.walletHandler.DeleteWallet)
		}

		api.GET("/wallets", d.walletHandler.ListWallets)
		api.GET("/transactions", d.transactionHandler.ListTransactions)
		api.GET("/version", d.versionHandler.GetVersion)
	}
}
