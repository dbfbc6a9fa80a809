// Package main is the entry point for the FlexiUI API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"flexiui/internal/ai"
	"flexiui/internal/cache"
	"flexiui/internal/config"
	"flexiui/internal/database"
	"flexiui/internal/generator"
	"flexiui/internal/handlers"
	"flexiui/internal/preview"
	"flexiui/internal/router"
	"flexiui/internal/storage"
	"flexiui/internal/store"
)

func main() {
	// Bootstrap logger until the configured level and format are known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Load configuration from environment variables (and .env if present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON everywhere else.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"ai_provider", cfg.AIProvider,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if v, err := database.SchemaVersion(db); err == nil {
		slog.Info("database schema ready", "version", v)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	projectStore := store.NewProjectStore(db)
	logStore := store.NewGenerationLogStore(db)

	if n, err := projectStore.Count(); err == nil {
		slog.Info("projects loaded", "count", n)
	}

	deps := handlers.Deps{
		Projects: projectStore,
		Logs:     logStore,
		Renderer: preview.NewRenderer(),
	}

	// Connect to Valkey for the project read cache (optional).
	var valkeyClient *redis.Client
	if cfg.ValkeyEnabled() {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		projectCache := cache.NewProjectCache(valkeyClient, cache.DefaultProjectTTL)
		// Entries written by a previous process may predate a migration.
		projectCache.InvalidateAll(context.Background())
		deps.Cache = projectCache
	} else {
		slog.Warn("valkey not configured, project cache disabled")
	}

	// Connect to S3-compatible object storage (optional).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", storageClient.Bucket())
		deps.Publisher = storageClient
	} else {
		slog.Warn("s3 storage not configured, publishing disabled")
	}

	// Initialize the AI provider registry with all configured providers.
	providerConfigs := make(map[string]ai.ProviderConfig, len(cfg.Providers))
	for name, p := range cfg.Providers {
		providerConfigs[name] = ai.ProviderConfig{APIKey: p.APIKey, Model: p.Model, BaseURL: p.BaseURL}
	}
	aiRegistry := ai.NewRegistry(cfg.AIProvider, providerConfigs)

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)
	if !aiRegistry.Configured() {
		slog.Warn("active ai provider has no api key, completions will fail", "provider", aiRegistry.ActiveName())
	}

	deps.Generator = generator.NewService(aiRegistry)
	deps.Provider = aiRegistry

	// Set up the Chi router with all middleware and routes.
	r := router.New(handlers.NewAPI(deps), cfg.CORSOrigins())

	// WriteTimeout must accommodate generation endpoints that wait on the
	// model (provider clients time out at 60s).
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give in-flight generations up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
