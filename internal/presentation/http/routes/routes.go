package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kuldeephumbal/BMS-sub001/internal/config"
	domainRepo "github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/handler"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/middleware"
	"github.com/kuldeephumbal/BMS-sub001/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Business *handler.BusinessHandler
	Party    *handler.PartyHandler
	Product  *handler.ProductHandler
	Cashbook *handler.CashbookHandler
	Expense  *handler.ExpenseHandler
	Bill     *handler.BillHandler
	Invoice  *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	BusinessRepo    domainRepo.BusinessRepository
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

		// Per-user rate limiter
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
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Businesses
	registerBusinessRoutes(protected, h)

	// Everything below operates on a single business, selected by the
	// X-Business-ID header.
	scoped := protected.Group("")
	scoped.Use(middleware.BusinessMiddleware(deps.BusinessRepo))

	// Parties (customers and suppliers)
	registerPartyRoutes(scoped, h)

	// Products and stock
	registerProductRoutes(scoped, h)

	// Cashbook
	registerCashbookRoutes(scoped, h)

	// Expenses and budgets
	registerExpenseRoutes(scoped, h)

	// Bills
	registerBillRoutes(scoped, h, deps)

	// Invoice documents and printing
	registerInvoiceRoutes(scoped, h)
}

func registerBusinessRoutes(protected *gin.RouterGroup, h *Handlers) {
	businesses := protected.Group("/businesses")
	{
		businesses.GET("", h.Business.List)
		businesses.POST("", h.Business.Create)
		businesses.GET("/:id", h.Business.Get)
		businesses.PUT("/:id", h.Business.Update)
		businesses.DELETE("/:id", h.Business.Delete)
	}
}

func registerPartyRoutes(scoped *gin.RouterGroup, h *Handlers) {
	parties := scoped.Group("/parties")
	{
		parties.GET("", h.Party.List)
		parties.POST("", h.Party.Create)
		parties.GET("/:id", h.Party.Get)
		parties.GET("/:id/balance", h.Party.GetBalance)
		parties.PUT("/:id", h.Party.Update)
		parties.DELETE("/:id", h.Party.Delete)
	}
}

func registerProductRoutes(scoped *gin.RouterGroup, h *Handlers) {
	products := scoped.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/stock", h.Product.AdjustStock)
		products.GET("/:id/movements", h.Product.ListMovements)
	}
}

func registerCashbookRoutes(scoped *gin.RouterGroup, h *Handlers) {
	cashbook := scoped.Group("/cashbook")
	{
		cashbook.GET("", h.Cashbook.List)
		cashbook.POST("", h.Cashbook.Create)
		cashbook.GET("/summary", h.Cashbook.Summary)
		cashbook.GET("/:id", h.Cashbook.Get)
		cashbook.PUT("/:id", h.Cashbook.Update)
		cashbook.DELETE("/:id", h.Cashbook.Delete)
	}
}

func registerExpenseRoutes(scoped *gin.RouterGroup, h *Handlers) {
	expenses := scoped.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/summary", h.Expense.MonthlySummary)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	budgets := scoped.Group("/budgets")
	{
		budgets.PUT("", h.Expense.SetBudget)
		budgets.DELETE("/:id", h.Expense.DeleteBudget)
	}
}

func registerBillRoutes(scoped *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := scoped.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		// Bill creation uses idempotency middleware so a retried request
		// cannot move stock twice
		bills.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.PUT("/:id", h.Bill.Update)
		bills.DELETE("/:id", h.Bill.Delete)
	}
}

func registerInvoiceRoutes(scoped *gin.RouterGroup, h *Handlers) {
	invoices := scoped.Group("/bills/:id/invoice")
	{
		invoices.GET("/pdf", h.Invoice.ExportPDF)
		invoices.GET("/text", h.Invoice.RenderText)
		invoices.GET("/share", h.Invoice.Share)
		invoices.POST("/print", h.Invoice.Print)
	}

	printerGroup := scoped.Group("/printer")
	{
		printerGroup.GET("/status", h.Invoice.PrinterStatus)
	}
}
