// SkillForge assessment server — provides the HTTP API, drives LLM question
// generation, and runs the retention cleanup loop.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/skillforge/skillforge/pkg/agent"
	"github.com/skillforge/skillforge/pkg/api"
	"github.com/skillforge/skillforge/pkg/cleanup"
	"github.com/skillforge/skillforge/pkg/config"
	"github.com/skillforge/skillforge/pkg/database"
	"github.com/skillforge/skillforge/pkg/services"
)

func main() {
	// Load .env from the working directory when present.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting SkillForge", "http_addr", cfg.Server.Addr)

	ctx := context.Background()

	// Database (runs embedded migrations on startup).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// LLM client. grpc.NewClient dials lazily; the first generation round
	// triggers the actual connection.
	llmClient, err := agent.NewGRPCLLMClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	// Domain services.
	surveyService := services.NewSurveyService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	autosaveService := services.NewAutosaveService(dbClient.Client)
	scoringService := services.NewScoringService(dbClient.Client)
	generationService := services.NewGenerationService(
		dbClient.Client, llmClient, sessionService, surveyService, scoringService, cfg.Generation)
	slog.Info("Services initialized")

	// Retention cleanup loop.
	cleanupService := cleanup.NewService(&cfg.Retention, sessionService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// HTTP server.
	server := api.NewServer(dbClient, surveyService, sessionService, generationService, autosaveService, scoringService)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
