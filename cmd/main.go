package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"kiratakip/internal/auth"
	"kiratakip/internal/chat"
	"kiratakip/internal/common"
	"kiratakip/internal/config"
	"kiratakip/internal/handlers"
	"kiratakip/internal/jobs"
	"kiratakip/internal/middleware"
	"kiratakip/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// All application state is in-process; nothing survives a restart.
	store := storage.NewMemStorage()
	sessions := auth.NewSessionManager(cfg.SessionTTL)
	hub := chat.NewHub(cfg.ChatReplyDelay, logger)

	scheduler, err := jobs.StartSessionCleanup(sessions, cfg.SessionPurgeInterval, logger)
	if err != nil {
		logger.Fatal("start session cleanup", zap.Error(err))
	}
	defer func() {
		_ = scheduler.Shutdown()
	}()

	// Create handlers
	tenantHandlers := handlers.NewTenantHandlers(store)
	landlordHandlers := handlers.NewLandlordHandlers(store)
	propertyHandlers := handlers.NewPropertyHandlers(store)
	contractHandlers := handlers.NewContractHandlers(store)
	paymentHandlers := handlers.NewPaymentHandlers(store)
	dashboardHandlers := handlers.NewDashboardHandlers(store)
	authHandlers := handlers.NewAuthHandlers(store, sessions)
	chatHandlers := handlers.NewChatHandlers(hub)

	// Create Echo instance
	e := echo.New()
	e.Validator = common.NewValidator()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", handlers.ReadinessCheck)

	api := e.Group("/api")

	// Auth routes; only /me is session-gated. Entity CRUD below is served
	// without authentication, mirroring the existing public API surface.
	requireSession := middleware.RequireSession(sessions, store)
	api.POST("/auth/register", authHandlers.Register)
	api.POST("/auth/login", authHandlers.Login)
	api.POST("/auth/logout", authHandlers.Logout)
	api.GET("/auth/me", authHandlers.Me, requireSession)

	// Tenant routes
	api.GET("/tenants", tenantHandlers.ListTenants)
	api.POST("/tenants", tenantHandlers.CreateTenant)
	api.GET("/tenants/:id", tenantHandlers.GetTenant)
	api.PUT("/tenants/:id", tenantHandlers.UpdateTenant)
	api.DELETE("/tenants/:id", tenantHandlers.DeleteTenant)

	// Landlord routes
	api.GET("/landlords", landlordHandlers.ListLandlords)
	api.POST("/landlords", landlordHandlers.CreateLandlord)
	api.GET("/landlords/:id", landlordHandlers.GetLandlord)
	api.PUT("/landlords/:id", landlordHandlers.UpdateLandlord)
	api.DELETE("/landlords/:id", landlordHandlers.DeleteLandlord)

	// Property routes
	api.GET("/properties", propertyHandlers.ListProperties)
	api.POST("/properties", propertyHandlers.CreateProperty)
	api.GET("/properties/:id", propertyHandlers.GetProperty)
	api.PUT("/properties/:id", propertyHandlers.UpdateProperty)
	api.DELETE("/properties/:id", propertyHandlers.DeleteProperty)

	// Contract routes
	api.GET("/contracts", contractHandlers.ListContracts)
	api.POST("/contracts", contractHandlers.CreateContract)
	api.GET("/contracts/:id", contractHandlers.GetContract)
	api.PUT("/contracts/:id", contractHandlers.UpdateContract)
	api.DELETE("/contracts/:id", contractHandlers.DeleteContract)

	// Payment routes; the static paths must stay ahead of :id
	api.GET("/payments", paymentHandlers.ListPayments)
	api.POST("/payments", paymentHandlers.CreatePayment)
	api.GET("/payments/pending", paymentHandlers.PendingPayments)
	api.GET("/payments/overdue", paymentHandlers.OverduePayments)
	api.GET("/payments/:id", paymentHandlers.GetPayment)
	api.PUT("/payments/:id", paymentHandlers.UpdatePayment)
	api.DELETE("/payments/:id", paymentHandlers.DeletePayment)
	api.GET("/payments/:id/receipt", paymentHandlers.PaymentReceipt)

	// Dashboard
	api.GET("/dashboard/stats", dashboardHandlers.GetStats)

	// Chat
	api.GET("/chat/status", chatHandlers.Status)
	e.GET("/ws", hub.HandleWS)

	logger.Info("kiratakip server starting", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
