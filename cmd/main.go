package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "spotplan/internal/adapter/http"
	"spotplan/internal/adapter/notion"
	"spotplan/internal/adapter/postgres"
	"spotplan/internal/adapter/usecase"
	"spotplan/internal/config"
	"spotplan/internal/db"
)

// main is the entry point of the calendar service. It loads configuration,
// optionally prepares the snapshot database, wires the Notion gateway into
// the planner use case and serves the HTTP API until a termination signal
// arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var opts []usecase.Option
	opts = append(opts,
		usecase.WithFieldLimit(cfg.Planner.FieldLimit),
		usecase.WithHistoryLimit(cfg.Planner.HistoryLimit),
	)

	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			applied, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("snapshot schema ready", slog.Bool("migrated", applied))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo snapshot seeded", slog.String("record_id", db.DemoRecordID))
			}
		}
		opts = append(opts, usecase.WithSnapshots(postgres.NewSnapshotRepository(pool)))
	} else {
		logger.Info("snapshot history disabled")
	}

	if cfg.Notion.Token == "" {
		logger.Warn("NOTION_TOKEN is not set; campaign routes will fail until it is configured")
	}
	records := notion.NewGateway(cfg.Notion, logger)
	defer records.Close()

	svc := usecase.NewPlannerUseCase(records, logger, opts...)
	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.AllowedOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
