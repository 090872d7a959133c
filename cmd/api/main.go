package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/mattcann1/ccx-marketplace-api/internal/adapter/handler"
	"github.com/mattcann1/ccx-marketplace-api/internal/adapter/middleware"
	"github.com/mattcann1/ccx-marketplace-api/internal/adapter/storage"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/config"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Connect to Database
	dbPool, err := storage.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("❌ Database connection failed", "error", err)
		os.Exit(1)
	}
	// We close the pool manually on shutdown, not with defer.

	// 4. Schema + Sample Inventory
	if err := storage.Migrate(context.Background(), dbPool); err != nil {
		slog.Error("❌ Migration failed", "error", err)
		os.Exit(1)
	}
	if err := storage.SeedSampleData(context.Background(), dbPool); err != nil {
		slog.Error("❌ Seeding failed", "error", err)
		os.Exit(1)
	}

	// 5. Setup Repos & Handlers
	inventoryRepo := storage.NewInventoryRepository(dbPool)
	ledgerRepo := storage.NewLedgerRepository(dbPool)

	creditHandler := &handler.CreditHandler{Inventory: inventoryRepo}
	purchaseHandler := &handler.PurchaseHandler{Repo: ledgerRepo, WebhookURL: cfg.WebhookURL}
	transactionHandler := &handler.TransactionHandler{Repo: ledgerRepo}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "CCX Marketplace API - Transparent Carbon Trading"})
	})

	// 7. Routes
	api := app.Group("/api")

	// Public
	api.Get("/credits", creditHandler.ListCredits)
	api.Get("/credits/available_amount", creditHandler.TotalAvailable)

	// Protected
	api.Get("/credits/:id", middleware.Protected(), creditHandler.GetCredit)
	api.Post("/purchase", middleware.Protected(), middleware.Idempotency(dbPool), purchaseHandler.Purchase)
	api.Get("/transactions", middleware.Protected(), transactionHandler.List)

	// 8. Start Worker
	worker.StartWebhookWorker(dbPool, cfg.WebhookSecret)

	// Graceful shutdown: finish in-flight purchases, then close the pool.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	dbPool.Close()
	slog.Info("✅ Database connection closed")

	slog.Info("👋 Server exited successfully")
}
