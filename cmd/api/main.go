package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/blob"
	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/routes"
)

// @title Backoffice API
// @version 1.0
// @description Back-office records API: customers, vendors, employees, quotes, purchase orders, invoices and expenses.
// @BasePath /
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database.DB); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Attachment storage is optional; without a bucket the attachment
	// routes stay unmounted.
	var files blob.Store
	s3cfg, err := config.NewS3Config()
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}
	if s3cfg != nil {
		files = blob.NewS3Store(s3cfg.Client, s3cfg.Bucket)
		log.Printf("Attachment storage enabled (bucket %s)", s3cfg.Bucket)
	}

	// Create router and setup routes
	router := routes.SetupRoutes(database.DB, cfg, files)

	// Create server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
