package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helpbot/internal/config"
	"helpbot/internal/db"
	"helpbot/internal/inference"
	"helpbot/internal/jobs"
	"helpbot/internal/kb"
	"helpbot/internal/metrics"
	"helpbot/internal/nlp"
	"helpbot/internal/responder"
	"helpbot/internal/server"
	"helpbot/internal/session"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Normalizer and knowledge base
	normalizer, err := nlp.NewNormalizer()
	if err != nil {
		log.Fatalf("Failed to initialize normalizer: %v", err)
	}

	base, err := kb.Load(cfg.KBFile, normalizer)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	if cfg.KBFile == "" {
		log.Println("KB_FILE not set, using built-in knowledge base")
	}
	log.Printf("Knowledge base loaded (%d entries)", base.Len())

	// Session context store
	var sessions session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Println("Session context stored in redis")
	} else {
		sessions = session.NewMemoryStore()
	}

	// Inference adapter - a missing endpoint degrades the bot to
	// knowledge-base-only mode instead of failing startup.
	var adapter inference.Adapter
	if cfg.InferenceEnabled() {
		adapter = inference.NewClient(cfg.InferenceURL, cfg.InferenceToken, cfg.InferenceTimeout)
		log.Printf("Inference enabled (endpoint: %s, timeout: %v)", cfg.InferenceURL, cfg.InferenceTimeout)
	} else {
		adapter = inference.NewUnavailable("INFERENCE_URL not set")
	}

	metrics.Init(database, adapter.Available())

	r := responder.New(normalizer, base, sessions, adapter, database)

	// Background session eviction for the in-memory store; redis handles
	// expiry natively.
	if sweeper, ok := sessions.(session.Sweeper); ok && cfg.SessionTTL > 0 {
		go jobs.NewSessionSweeper(sweeper, time.Minute, cfg.SessionTTL).Start(ctx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(database, base, adapter, r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
