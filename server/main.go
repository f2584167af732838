package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/product-variations/internal/config"
	"github.com/phambaophuc/product-variations/internal/http/handlers"
	"github.com/phambaophuc/product-variations/internal/http/routes"
	"github.com/phambaophuc/product-variations/internal/services/builder"
	"github.com/phambaophuc/product-variations/internal/services/media"
	"github.com/phambaophuc/product-variations/internal/services/processor"
	"github.com/phambaophuc/product-variations/internal/services/queue"
	"github.com/phambaophuc/product-variations/internal/services/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration; missing media credentials stop the process here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	cld, err := media.NewCloudinaryClient(cfg.Cloudinary)
	if err != nil {
		logger.Fatal("Failed to initialize cloudinary client", zap.Error(err))
	}

	generator := builder.NewGenerator(cld, logger)
	imageProcessor := processor.NewImageProcessor(cfg.Storage.MaxFileSize, cfg.Storage.MaxUploadDimension)

	store, err := storage.NewStorageService(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	}
	defer store.Close()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	var publisher handlers.JobPublisher
	jobQueue, err := queue.NewQueueService(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, generator, store, logger)
	if err != nil {
		// Continue without async jobs; synchronous generation still works
		logger.Warn("Failed to initialize queue service", zap.Error(err))
	} else {
		defer jobQueue.Close()
		publisher = jobQueue
		for i := 1; i <= cfg.RabbitMQ.Workers; i++ {
			if err := jobQueue.StartWorker(workerCtx, i); err != nil {
				logger.Error("Failed to start worker", zap.Int("worker_id", i), zap.Error(err))
			}
		}
	}

	// Initialize handlers
	variationHandler := handlers.NewVariationHandler(generator, imageProcessor, store, publisher, cld, logger, cfg)

	router := routes.NewRouter(variationHandler, logger, cfg.Storage.MaxFileSize)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopWorkers()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
