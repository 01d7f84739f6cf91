// Package server assembles the HTTP router from the application services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"saheminvest/internal/config"
	"saheminvest/internal/handlers"
	"saheminvest/internal/metrics"
	"saheminvest/internal/middleware"
	"saheminvest/internal/models"
	"saheminvest/internal/services"

	_ "saheminvest/internal/docs" // Import swagger docs
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	Users          services.UserServicer
	Ledger         services.LedgerServicer
	Deals          services.DealServicer
	Pool           services.PoolServicer
	Distributions  services.DistributionRequestServicer
	Notifications  services.NotificationServicer
	Reconciliation services.ReconciliationServicer
	Audit          services.AuditServicer
}

// NewServices wires the service graph over db. notifier receives distribution
// events after commit.
func NewServices(db *gorm.DB, notifier services.Notifier, currencySymbol string) Services {
	ledger := services.NewLedgerService(db)
	pool := services.NewPoolService(db, ledger)
	engine := services.NewDistributionEngine(ledger, pool)

	return Services{
		Users:          services.NewUserService(db),
		Ledger:         ledger,
		Deals:          services.NewDealService(db),
		Pool:           pool,
		Distributions:  services.NewDistributionRequestService(db, engine, notifier, currencySymbol),
		Notifications:  services.NewNotificationService(db),
		Reconciliation: services.NewReconciliationService(db, ledger, pool),
		Audit:          services.NewAuditService(db),
	}
}

// NewRouter builds the Gin engine with all routes mounted.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit)
	dealHandler := handlers.NewDealHandler(svc.Deals, svc.Pool, svc.Distributions, svc.Audit)
	distributionHandler := handlers.NewDistributionHandler(svc.Distributions, svc.Audit)
	walletHandler := handlers.NewWalletHandler(svc.Ledger, svc.Audit)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications)
	reconciliationHandler := handlers.NewReconciliationHandler(svc.Reconciliation, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Pipeline routes
	internal := v1.Group("/internal")
	internal.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	internal.POST("/reconcile", reconciliationHandler.Run)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	deals := protected.Group("/deals")
	deals.POST("", middleware.RequireRole(models.RolePartner, models.RoleAdmin), dealHandler.CreateDeal)
	deals.GET("", dealHandler.ListDeals)
	deals.GET("/:id", dealHandler.GetDeal)
	deals.POST("/:id/transition", middleware.RequireRole(models.RolePartner, models.RoleAdmin), dealHandler.Transition)
	deals.POST("/:id/investments", middleware.RequireRole(models.RoleInvestor), dealHandler.Invest)
	deals.GET("/:id/pool", dealHandler.GetPool)
	deals.GET("/:id/distributions", dealHandler.ListProfitDistributions)
	deals.POST("/:id/distribution-requests", middleware.RequireRole(models.RolePartner, models.RoleAdmin), distributionHandler.Create)
	deals.GET("/:id/distribution-requests", middleware.RequireRole(models.RolePartner, models.RoleAdmin), distributionHandler.ListByDeal)

	requests := protected.Group("/distribution-requests")
	requests.GET("/pending", middleware.RequireRole(models.RoleAdmin), distributionHandler.ListPending)
	requests.GET("/:id", middleware.RequireRole(models.RolePartner, models.RoleAdmin), distributionHandler.Get)
	requests.POST("/:id/approve", middleware.RequireRole(models.RoleAdmin), distributionHandler.Approve)
	requests.POST("/:id/reject", middleware.RequireRole(models.RoleAdmin), distributionHandler.Reject)

	wallet := protected.Group("/wallet")
	wallet.POST("/deposit", walletHandler.Deposit)
	wallet.POST("/withdraw", walletHandler.Withdraw)
	wallet.GET("/transactions", walletHandler.ListTransactions)
	wallet.GET("/reconcile", walletHandler.Reconcile)

	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.List)
	notifications.POST("/:id/read", notificationHandler.MarkRead)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/audit/:type/:id", reconciliationHandler.AuditTrail)
	admin.GET("/deposits", walletHandler.ListPendingDeposits)
	admin.POST("/deposits/:id/confirm", walletHandler.ConfirmDeposit)
	admin.POST("/deposits/:id/reject", walletHandler.RejectDeposit)

	return router
}
