package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahirfaisal/estate-api/internal/application/service"
	"github.com/mahirfaisal/estate-api/internal/config"
	"github.com/mahirfaisal/estate-api/internal/infrastructure/database"
	"github.com/mahirfaisal/estate-api/internal/infrastructure/repository"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/handler"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/routes"
	"github.com/mahirfaisal/estate-api/pkg/currency"
	"github.com/mahirfaisal/estate-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logrus.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Display-currency converter for owner statements
	converter := currency.NewConverter(
		cfg.Currency.BaseCode,
		cfg.Currency.DisplayCode,
		cfg.Currency.Rate(),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	shopRepo := repository.NewShopRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	leaseRepo := repository.NewLeaseRepository(db)
	adjustmentRepo := repository.NewRentAdjustmentRepository(db)
	invoiceRepo := repository.NewRentInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	depositRepo := repository.NewBankDepositRepository(db)
	deletionLogRepo := repository.NewDeletionLogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, ownerRepo, jwtManager)
	ownerService := service.NewOwnerService(ownerRepo, depositRepo, expenseRepo, shopRepo)
	shopService := service.NewShopService(shopRepo, ownerRepo, leaseRepo)
	tenantService := service.NewTenantService(tenantRepo, leaseRepo, invoiceRepo, paymentRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, adjustmentRepo)
	leaseService := service.NewLeaseService(leaseRepo, shopRepo, tenantRepo, paymentRepo, expenseRepo, adjustmentRepo, invoiceService)
	paymentService := service.NewPaymentService(paymentRepo, leaseRepo, invoiceRepo, invoiceService)
	expenseService := service.NewExpenseService(expenseRepo, ownerRepo, leaseRepo)
	depositService := service.NewDepositService(depositRepo, ownerRepo)
	dashboardService := service.NewDashboardService(tenantRepo, leaseRepo, shopRepo, invoiceRepo, paymentRepo)
	reportService := service.NewReportService(ownerRepo, shopRepo, leaseRepo, paymentRepo, expenseRepo, depositRepo, converter)
	auditService := service.NewAuditService(deletionLogRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Owner:     handler.NewOwnerHandler(ownerService),
		Shop:      handler.NewShopHandler(shopService),
		Tenant:    handler.NewTenantHandler(tenantService),
		Lease:     handler.NewLeaseHandler(leaseService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Deposit:   handler.NewDepositHandler(depositService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService, auditService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    port,
		"env":     cfg.App.Env,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
