package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/config"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/database"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/handlers"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/models"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/store"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Auto-Migrate Schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Part{},
		&models.RackCell{},
		&models.HistoryEvent{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Seed operator accounts on first boot
	if err := seedUsers(db); err != nil {
		log.Printf("⚠️ User seed warning: %v", err)
	}

	// 5. Load the board from the gateway; fall back to the built-in part
	// master when nothing has ever been persisted
	gateway := store.NewGormStore(db.DB)
	b, err := store.Load(gateway)
	if err != nil {
		log.Fatalf("Failed to load board state: %v", err)
	}
	if b.Empty() {
		log.Println("📋 Empty store, seeding default part master...")
		b = board.NewWithDefaults()
		if err := store.Save(gateway, b); err != nil {
			log.Printf("⚠️ Could not persist defaults: %v", err)
		}
	}
	log.Printf("✅ Board loaded: %d parts, %d events, %d units on hand",
		len(b.ListParts()), len(b.Events()), b.TotalQuantity())

	// 6. Set up HTTP router
	router := handlers.NewRouter(db, b, gateway, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("🚀 FG Stock Board starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("⚠️ HTTP shutdown error: %v", err)
	}

	// Final flush so the store reflects the last in-memory state
	if err := store.Save(gateway, b); err != nil {
		log.Printf("⚠️ Final save failed: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("⚠️ Database close error: %v", err)
	}
	log.Println("👋 Shutdown complete")
}
