package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoice-service/internal/config"
	"invoice-service/internal/handlers"
	"invoice-service/internal/middleware"
	"invoice-service/internal/services"
)

// @title Invoice Service API
// @version 1.0
// @description PDF generation service for billing documents: invoices and receipts in multiple visual templates

// @contact.name API Support

// @host localhost:8080
// @BasePath /api
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Initialize services and handlers
	documentService := services.NewDocumentService(logger)
	documentHandler := handlers.NewDocumentHandler(documentService, logger, cfg.Upload.MaxAssetSizeBytes)
	healthHandler := handlers.NewHealthHandler()

	router := setupRouter(cfg, documentHandler, healthHandler, logger)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Shutting down Invoice Service")
		os.Exit(0)
	}()

	// Start server
	logger.Infof("Starting Invoice Service on %s", cfg.GetServerAddress())
	if err := router.Run(cfg.GetServerAddress()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures the Gin router with middleware and routes
func setupRouter(cfg *config.Config, documentHandler *handlers.DocumentHandler, healthHandler *handlers.HealthHandler, logger *logrus.Logger) *gin.Engine {
	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxRequestSizeBytes

	// Setup middleware
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(cfg.App.CORSOrigins))
	router.Use(middleware.Metrics())

	// Health check and observability endpoints
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.HealthCheck)
	router.GET("/metrics", middleware.MetricsHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	api.Use(middleware.MaxBodySize(cfg.Upload.MaxRequestSizeBytes))
	{
		api.GET("/health", healthHandler.HealthCheck)

		invoices := api.Group("/invoices")
		{
			invoices.POST("/generate-pdf", documentHandler.GenerateInvoicePDF)
		}

		receipts := api.Group("/receipts")
		{
			receipts.POST("/generate-pdf", documentHandler.GenerateReceiptPDF)
		}
	}

	return router
}
