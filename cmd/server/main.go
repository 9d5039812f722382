package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"excelproc/internal/config"
	"excelproc/internal/core"
	"excelproc/internal/logging"
	"excelproc/internal/web"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"data_dir", cfg.Process.DataDir,
		"keep_source_columns", cfg.Process.KeepSourceColumns,
		"max_concurrent", cfg.Process.MaxConcurrent,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Create service with config
	service := core.NewService(core.Options{
		KeepSourceColumns: cfg.Process.KeepSourceColumns,
		MaxConcurrent:     cfg.Process.MaxConcurrent,
		MaxWait:           cfg.Process.MaxWaitTime,
		HistorySize:       cfg.Process.HistorySize,
	})

	// Create server with config
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for active processing jobs to complete (with timeout)
		status := service.LimiterStatus()
		if status.Active > 0 {
			slog.Info("waiting for processing jobs to complete", "active", status.Active)
			if err := service.WaitForJobs(shutdownCtx); err != nil {
				slog.Warn("processing jobs did not complete in time", "error", err)
			} else {
				slog.Info("all processing jobs completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
