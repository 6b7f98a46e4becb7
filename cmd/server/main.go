package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rpggio/fieldbook/internal/config"
	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/memory"
	"github.com/rpggio/fieldbook/internal/sqlite"
	"github.com/rpggio/fieldbook/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	router := transport.NewServer(transport.Config{
		Clients:      client.NewService(repos.Clients, logger),
		Projects:     project.NewService(repos.Projects, logger),
		Invoices:     invoice.NewService(repos.Invoices, cfg.Signing.BaseURL, logger),
		Proposals:    proposal.NewService(repos.Proposals, cfg.Signing.BaseURL, logger),
		Appointments: appointment.NewService(repos.Appointments, logger),
		Repos:        repos,
		Logger:       logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "store", cfg.Store.Driver)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

// buildRepositories opens the configured store backend. The memory backend
// seeds demo fixtures; the sqlite backend migrates on startup.
func buildRepositories(cfg config.Config, logger *slog.Logger) (transport.Repositories, func(), error) {
	if cfg.Store.Driver == "memory" {
		store := memory.New(memory.Options{Latency: cfg.Store.Latency})
		logger.Info("using in-memory store", "latency", cfg.Store.Latency)
		return transport.Repositories{
			Clients:      store.Clients,
			Projects:     store.Projects,
			Invoices:     store.Invoices,
			Proposals:    store.Proposals,
			Appointments: store.Appointments,
		}, func() {}, nil
	}

	if err := ensureDBDir(cfg.Store.Path); err != nil {
		return transport.Repositories{}, nil, fmt.Errorf("preparing database path: %w", err)
	}
	db, err := sqlite.New(cfg.Store.Path)
	if err != nil {
		return transport.Repositories{}, nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return transport.Repositories{}, nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("using sqlite store", "path", cfg.Store.Path)
	return transport.Repositories{
		Clients:      sqlite.NewClientRepository(db),
		Projects:     sqlite.NewProjectRepository(db),
		Invoices:     sqlite.NewInvoiceRepository(db),
		Proposals:    sqlite.NewProposalRepository(db),
		Appointments: sqlite.NewAppointmentRepository(db),
	}, func() { db.Close() }, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
