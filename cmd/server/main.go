package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/light-bringer/checkout-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, port, err := loadConfig()
	if err != nil {
		return err
	}

	log.Printf("Starting Checkout Service...")
	log.Printf("Spanner Database: %s", cfg.SpannerDB)
	log.Printf("HTTP Port: %s", port)

	serviceOpts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           serviceOpts.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	return nil
}

// loadConfig builds the service configuration from environment variables.
func loadConfig() (*services.Config, string, error) {
	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		// Default for local development with emulator
		spannerDB = "projects/test-project/instances/dev-instance/databases/checkout-db"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, "", fmt.Errorf("JWT_SECRET must be set")
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	tokenTTL := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, "", fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		tokenTTL = ttl
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return &services.Config{
		SpannerDB: spannerDB,
		JWTSecret: []byte(secret),
		TokenTTL:  tokenTTL,
		Logger:    logger,
	}, port, nil
}
