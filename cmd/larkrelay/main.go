package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/telhawk-systems/larkrelay/internal/config"
	"github.com/telhawk-systems/larkrelay/internal/handlers"
	"github.com/telhawk-systems/larkrelay/internal/logging"
	"github.com/telhawk-systems/larkrelay/internal/notifier"
	"github.com/telhawk-systems/larkrelay/internal/ratelimit"
	"github.com/telhawk-systems/larkrelay/internal/server"
	"github.com/telhawk-systems/larkrelay/internal/service"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Cannot start: %v", err)
	}

	// Initialize structured logging
	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("larkrelay"))
	logging.SetDefault(logger)

	slog.Info("Starting Lark relay",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Logging.Level),
		slog.String("log_format", cfg.Logging.Format),
	)
	if *configPath != "" {
		slog.Info("Loaded configuration", slog.String("config_path", *configPath))
	}
	if cfg.Lark.WebhookURL == "" {
		slog.Warn("lark webhook url not configured; lark notifications will fail")
	}

	// Initialize rate limiter
	var rateLimiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter, err := ratelimit.NewRedisRateLimiter(
			cfg.RateLimit.RedisAddr,
			cfg.RateLimit.RequestsPerMin,
			time.Minute,
		)
		if err != nil {
			log.Printf("WARNING: Failed to initialize Redis rate limiter: %v", err)
			log.Println("Continuing without rate limiting")
			rateLimiter = &ratelimit.NoOpRateLimiter{}
		} else {
			rateLimiter = limiter
			log.Printf("Rate limiting enabled: %d requests per minute", cfg.RateLimit.RequestsPerMin)
		}
	} else {
		rateLimiter = &ratelimit.NoOpRateLimiter{}
		log.Println("Rate limiting disabled in configuration")
	}
	defer rateLimiter.Close()

	// Wire the delivery pipeline
	channel := notifier.NewLarkChannel(cfg.Lark.WebhookURL, cfg.Lark.Timeout)
	relayService := service.NewRelayService(channel)

	handler := handlers.NewWebhookHandler(relayService, cfg.Linear.WebhookSecret, rateLimiter, cfg.Server.MaxBodyBytes)
	router := server.NewRouter(handler)

	// Create server with config values
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Lark relay listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
