package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concresys/concresys/internal/ai"
	"github.com/concresys/concresys/internal/config"
	"github.com/concresys/concresys/internal/database"
	"github.com/concresys/concresys/internal/handlers"
	"github.com/concresys/concresys/internal/models"
	"github.com/concresys/concresys/internal/registry"
	"github.com/concresys/concresys/internal/store"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in the shutdown handler below

	// 3. Synchronize schema
	log.Println("Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Location{},
		&models.Supplier{},
		&models.ConcreteType{},
		&models.Input{},
		&models.Device{},
		&models.PourRecord{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	// 4. Session state: gateway + full registry load
	st := store.New(db)
	reg := registry.New(st)
	log.Println("Loading collections into session state...")
	reg.Load()

	// 5. AI summarization is optional; a missing key only disables it
	var aiClient *ai.Client
	if cfg.Gemini.APIKey != "" {
		aiClient, err = ai.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("AI: client unavailable: %v", err)
		}
	} else {
		log.Println("AI: GEMINI_API_KEY not set, narrative reports disabled")
	}

	// 6. HTTP router and server with graceful shutdown
	router := handlers.NewRouter(cfg, st, reg, aiClient)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	aiClient.Close()

	log.Println("Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Shutdown complete")
}
