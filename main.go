package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"company-site-api/config"
	"company-site-api/internal/app"
	"company-site-api/internal/auth"
	"company-site-api/internal/database"
	"company-site-api/internal/server"
	"company-site-api/internal/storage"
	"company-site-api/internal/storage/memory"
	"company-site-api/internal/storage/postgres"
)

// @title           Company Site API
// @version         1.0
// @description     Backend for the company marketing site: job board, announcements, contact form, and the admin panel behind them.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Pick the persistence adapter ---
	var store *storage.Store
	if cfg.DB.Configured() {
		dbPool, err := database.NewConnectionPool(cfg.DB)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer dbPool.Close()
		store = postgres.NewStore(dbPool)
	} else {
		log.Println("No database configured, using the in-memory store")
		store = memory.NewStore()
		if cfg.Server.SeedDemo {
			if err := memory.Seed(context.Background(), store); err != nil {
				log.Fatalf("Failed to seed demo data: %v", err)
			}
			log.Println("In-memory store seeded with demo data")
		}
	}

	// --- Pick the refresh-token store ---
	var tokenStore auth.TokenStore
	if cfg.Redis.Configured() {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		tokenStore = auth.NewRedisTokenStore(redisClient)
	} else {
		log.Println("No Redis configured, using the in-process token store")
		tokenStore = auth.NewMemoryTokenStore()
	}

	application := &app.Application{
		Config:     cfg,
		Store:      store,
		TokenStore: tokenStore,
		Validator:  app.NewValidator(),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
