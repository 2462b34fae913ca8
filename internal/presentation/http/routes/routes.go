package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mahirfaisal/estate-api/internal/config"
	domainRepo "github.com/mahirfaisal/estate-api/internal/domain/repository"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/handler"
	"github.com/mahirfaisal/estate-api/internal/presentation/http/middleware"
	"github.com/mahirfaisal/estate-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Owner     *handler.OwnerHandler
	Shop      *handler.ShopHandler
	Tenant    *handler.TenantHandler
	Lease     *handler.LeaseHandler
	Payment   *handler.PaymentHandler
	Expense   *handler.ExpenseHandler
	Deposit   *handler.DepositHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/me", h.Auth.UpdateProfile)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	registerOwnerRoutes(protected, h)
	registerShopRoutes(protected, h)
	registerTenantRoutes(protected, h)
	registerLeaseRoutes(protected, h)
	registerPaymentRoutes(protected, h, deps)
	registerExpenseRoutes(protected, h)
	registerDepositRoutes(protected, h)
	registerDashboardRoutes(protected, h)
	registerReportRoutes(protected, h)
	registerAdminRoutes(protected, h)
}

func registerOwnerRoutes(protected *gin.RouterGroup, h *Handlers) {
	owners := protected.Group("/owners")
	{
		owners.GET("", h.Owner.List)
		owners.POST("", h.Owner.Create)
		owners.GET("/:id", h.Owner.Get)
		owners.PUT("/:id", h.Owner.Update)
		owners.DELETE("/:id", h.Owner.Delete)
		owners.GET("/:id/statement", h.Report.OwnerStatement)
		owners.GET("/:id/statement/export", h.Report.ExportOwnerStatement)
	}
}

func registerShopRoutes(protected *gin.RouterGroup, h *Handlers) {
	shops := protected.Group("/shops")
	{
		shops.GET("", h.Shop.List)
		shops.POST("", h.Shop.Create)
		shops.GET("/:id", h.Shop.Get)
		shops.PUT("/:id", h.Shop.Update)
		shops.DELETE("/:id", h.Shop.Delete)
	}
}

func registerTenantRoutes(protected *gin.RouterGroup, h *Handlers) {
	tenants := protected.Group("/tenants")
	{
		tenants.GET("", h.Tenant.List)
		tenants.POST("", h.Tenant.Create)
		tenants.GET("/:id", h.Tenant.Get)
		tenants.PUT("/:id", h.Tenant.Update)
		tenants.DELETE("/:id", h.Tenant.Delete)
		tenants.GET("/:id/dues", h.Tenant.Dues)
	}
}

func registerLeaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	leases := protected.Group("/leases")
	{
		leases.GET("", h.Lease.List)
		leases.POST("", h.Lease.Create)
		leases.GET("/:id", h.Lease.Get)
		leases.POST("/:id/adjust-rent", h.Lease.AdjustRent)
		leases.GET("/:id/invoices", h.Lease.Invoices)
		leases.GET("/:id/ledger", h.Lease.Ledger)
		leases.POST("/:id/settlement-preview", h.Lease.PreviewSettlement)
		leases.POST("/:id/terminate", h.Lease.Terminate)
	}
}

func registerPaymentRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		// Payments are money; creation requires an idempotency key so
		// client retries cannot double-book
		payments.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
		payments.DELETE("/:id", middleware.RequireSuperAdmin(), h.Payment.Delete)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerDepositRoutes(protected *gin.RouterGroup, h *Handlers) {
	deposits := protected.Group("/deposits")
	{
		deposits.GET("", h.Deposit.List)
		deposits.POST("", h.Deposit.Create)
		deposits.DELETE("/:id", h.Deposit.Delete)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/summary", h.Dashboard.Summary)
		dashboard.GET("/top-debtors", h.Dashboard.TopDebtors)
		dashboard.GET("/collection-trend", h.Dashboard.CollectionTrend)
		dashboard.GET("/occupancy", h.Dashboard.Occupancy)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/deletion-logs", middleware.RequireSuperAdmin(), h.Report.DeletionLogs)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireSuperAdmin())
	{
		admin.POST("/users", h.Auth.Register)
	}
}
