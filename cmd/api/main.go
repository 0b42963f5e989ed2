package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kuldeephumbal/BMS-sub001/internal/application/service"
	"github.com/kuldeephumbal/BMS-sub001/internal/config"
	"github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/database"
	"github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/repository"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/handler"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/routes"
	"github.com/kuldeephumbal/BMS-sub001/pkg/printer"
	"github.com/kuldeephumbal/BMS-sub001/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	cashbookRepo := repository.NewCashbookRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	billRepo := repository.NewBillRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	receiptPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	businessService := service.NewBusinessService(businessRepo)
	partyService := service.NewPartyService(partyRepo, billRepo)
	productService := service.NewProductService(productRepo, movementRepo)
	cashbookService := service.NewCashbookService(cashbookRepo)
	expenseService := service.NewExpenseService(expenseRepo, budgetRepo)
	billService := service.NewBillService(billRepo, partyRepo, productRepo, movementRepo)
	invoiceService := service.NewInvoiceService(billRepo, businessRepo, receiptPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Business: handler.NewBusinessHandler(businessService),
		Party:    handler.NewPartyHandler(partyService),
		Product:  handler.NewProductHandler(productService),
		Cashbook: handler.NewCashbookHandler(cashbookService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Bill:     handler.NewBillHandler(billService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		BusinessRepo:    businessRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
