package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/TKNasansor/TKNLIFT/internal/config"
	"github.com/TKNasansor/TKNLIFT/internal/database"
	"github.com/TKNasansor/TKNLIFT/internal/handlers"
	"github.com/TKNasansor/TKNLIFT/internal/logging"
	"github.com/TKNasansor/TKNLIFT/internal/middleware"
	"github.com/TKNasansor/TKNLIFT/internal/services"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/TKNasansor/TKNLIFT/internal/types"

	_ "github.com/TKNasansor/TKNLIFT/docs/api" // Swagger docs
)

// @title TKNLIFT API
// @version 1.0.0
// @description Elevator maintenance business management service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/TKNasansor/TKNLIFT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration first so LOG_LEVEL from a .env file is in place
	// before the logger is built.
	cfg, err := config.Load()
	if err != nil {
		logging.New().Fatalf("Failed to load configuration: %v", err)
	}

	log := logging.New()

	// Connect to database and migrate the snapshot schema
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Restore the last persisted state
	snapshots := services.NewSnapshotService(db)
	state, err := snapshots.LoadSnapshot()
	if err != nil {
		log.Fatalf("Failed to load state snapshot: %v", err)
	}

	st := store.New(state, snapshots, log)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("tknlift")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.OperatorMiddleware(st))

	h := handlers.NewHandler(st, log)
	sys := &handlers.SystemHandler{Handler: h, Config: cfg, DB: db}

	// System
	api.Get("/health", sys.Health)
	api.Get("/state", sys.ExportState)

	// Buildings
	api.Get("/buildings", h.ListBuildings)
	api.Post("/buildings", h.CreateBuilding)
	api.Get("/buildings/:id", h.GetBuilding)
	api.Put("/buildings/:id", h.UpdateBuilding)
	api.Delete("/buildings/:id", h.DeleteBuilding)

	// Parts and installations
	api.Get("/parts", h.ListParts)
	api.Post("/parts", h.CreatePart)
	api.Post("/parts/increase-prices", h.IncreasePrices)
	api.Put("/parts/:id", h.UpdatePart)
	api.Delete("/parts/:id", h.DeletePart)
	api.Get("/installations", h.ListInstallations)
	api.Post("/installations/:id/paid", h.MarkPartAsPaid)
	api.Post("/buildings/:id/parts", h.InstallPart)
	api.Post("/buildings/:id/manual-parts", h.InstallManualPart)

	// Maintenance
	api.Post("/buildings/:id/maintenance", h.ToggleMaintenance)
	api.Post("/buildings/:id/maintenance/revert", h.RevertMaintenance)
	api.Post("/maintenance/reset", h.ResetAllMaintenance)
	api.Get("/maintenance/records", h.ListMaintenanceRecords)
	api.Post("/maintenance/records", h.CreateMaintenanceRecord)
	api.Get("/maintenance/history", h.ListMaintenanceHistory)
	api.Get("/receipts", h.ListArchivedReceipts)
	api.Get("/buildings/:id/receipts/latest", h.LatestReceipt)

	// Payments and the debt ledger
	api.Post("/buildings/:id/payments", h.CreatePayment)
	api.Get("/payments", h.ListPayments)
	api.Post("/incomes", h.CreateIncome)
	api.Get("/incomes", h.ListIncomes)
	api.Get("/debt-records", h.ListDebtRecords)

	// Faults
	api.Post("/fault-reports", h.CreateFaultReport)
	api.Get("/fault-reports", h.ListFaultReports)
	api.Post("/fault-reports/:id/resolve", h.ResolveFaultReport)
	api.Post("/buildings/:id/fault", h.ReportFault)
	api.Get("/buildings/:id/fault-form", h.FaultForm)

	// Catalogs
	api.Get("/printers", h.ListPrinters)
	api.Post("/printers", h.CreatePrinter)
	api.Put("/printers/:id", h.UpdatePrinter)
	api.Delete("/printers/:id", h.DeletePrinter)
	api.Post("/printers/:id/ping", h.PingPrinter)
	api.Get("/sms-templates", h.ListSMSTemplates)
	api.Post("/sms-templates", h.CreateSMSTemplate)
	api.Put("/sms-templates/:id", h.UpdateSMSTemplate)
	api.Delete("/sms-templates/:id", h.DeleteSMSTemplate)
	api.Post("/sms-templates/:id/send", h.SendBulkSMS)
	api.Post("/sms-templates/:id/whatsapp", h.SendWhatsApp)
	api.Get("/proposals", h.ListProposals)
	api.Post("/proposals", h.CreateProposal)
	api.Put("/proposals/:id", h.UpdateProposal)
	api.Delete("/proposals/:id", h.DeleteProposal)
	api.Get("/proposal-templates", h.ListProposalTemplates)
	api.Post("/proposal-templates", h.CreateProposalTemplate)
	api.Put("/proposal-templates/:id", h.UpdateProposalTemplate)
	api.Delete("/proposal-templates/:id", h.DeleteProposalTemplate)
	api.Get("/qr-codes", h.ListQRCodes)
	api.Post("/qr-codes", h.CreateQRCode)
	api.Get("/auto-saves", h.ListAutoSaves)
	api.Put("/auto-saves/:id", h.UpsertAutoSave)

	// Session
	api.Get("/users", h.ListUsers)
	api.Delete("/users/:id", h.DeleteUser)
	api.Get("/session/user", h.CurrentUser)
	api.Post("/session/user", h.SetUser)
	api.Post("/session/sidebar", h.ToggleSidebar)
	api.Get("/updates", h.ListUpdates)
	api.Post("/updates", h.CreateUpdate)
	api.Get("/notifications", h.Notifications)
	api.Post("/notifications", h.CreateNotification)
	api.Post("/notifications/clear", h.ClearNotifications)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Infof("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Info("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
