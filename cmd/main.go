package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"where-is-my-table/internal/archive"
	"where-is-my-table/internal/config"
	"where-is-my-table/internal/database"
	"where-is-my-table/internal/engine"
	"where-is-my-table/internal/logger"
	"where-is-my-table/internal/server"
)

func main() {
	var (
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
	)
	flag.Parse()

	log := logger.New("table-service")
	requestID := logger.GenerateRequestID()

	cfg, err := loadConfig(*configPath, log, requestID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log, requestID); err != nil {
		log.Error("service_failed", "Table service failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func loadConfig(path string, log *logger.Logger, requestID string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("config_defaulted", "Config file not found, using defaults", requestID,
			map[string]interface{}{"path": path})
		return config.Default(), nil
	}
	return nil, err
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, requestID string) error {
	eng := engine.New(log)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Archive.Enabled {
		db, err := database.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize archive database: %w", err)
		}
		defer db.Close()
		log.Info("db_connected", "Connected to archive database", requestID, nil)

		if err := db.RunMigrations(ctx, "migrations"); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		archiver := archive.New(db, log)
		eng.SetArchiveSink(archiver.Sink())
		g.Go(func() error {
			return archiver.Run(ctx)
		})
	}

	handler := server.NewHandler(eng, log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler.SetupRoutes(),
	}

	g.Go(func() error {
		log.Info("service_started", fmt.Sprintf("Table service started on port %d", cfg.Server.Port), requestID,
			map[string]interface{}{
				"port":            cfg.Server.Port,
				"archive_enabled": cfg.Archive.Enabled,
			})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
