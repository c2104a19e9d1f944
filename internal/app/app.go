package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/features/optimize"
	"github.com/bestfranklinAI/web-scraper-future-studies/features/stats"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/config"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/export"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/middleware"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/pipeline"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/worker"
)

type TaskPublisher interface {
	Publish(topic string, body []byte) error
}

type App struct {
	Handler          http.Handler
	OptimizeService  *optimize.Service
	OptimizeConsumer *worker.OptimizeConsumer

	port int
}

func New(
	cfg *config.Config,
	db *sql.DB,
	taskPub TaskPublisher,
	logger *slog.Logger,
) (*App, error) {

	// Vocabulary profiles: built-ins, optionally overridden from YAML.
	registry := pipeline.DefaultRegistry()
	if cfg.ProfilePath != "" {
		var err error
		registry, err = pipeline.LoadRegistry(cfg.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles from %s: %w", cfg.ProfilePath, err)
		}
		slog.Info("loaded vocabulary profiles", "path", cfg.ProfilePath)
	}

	// Feature: Document (read side)
	documentRepo := document.NewPostgresRepo(db)
	documentService := document.NewService(documentRepo)
	documentHandler := document.NewHandler(documentService)
	exportHandler := export.NewHandler(documentService, cfg.ExportSourceLabel)

	// Feature: Optimize (write side)
	optimizeService := optimize.NewService(documentRepo, registry, taskPub)
	optimizeHandler := optimize.NewHandler(optimizeService)

	// Feature: Stats
	statsHandler := stats.NewHandler(documentRepo)

	// Middleware: CORS
	enableCORS := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Routes
	mux := http.NewServeMux()

	mux.Handle("POST /optimize", middleware.CorrelationID(enableCORS(optimizeHandler.Optimize)))

	mux.Handle("GET /documents", middleware.CorrelationID(enableCORS(documentHandler.List)))
	mux.Handle("GET /documents/{id}", middleware.CorrelationID(enableCORS(documentHandler.Get)))
	mux.Handle("GET /export", middleware.CorrelationID(enableCORS(exportHandler.Export)))

	mux.Handle("GET /stats", middleware.CorrelationID(enableCORS(statsHandler.GetStats)))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	optimizeConsumer := worker.NewOptimizeConsumer(optimizeService)

	return &App{
		Handler:          mux,
		OptimizeService:  optimizeService,
		OptimizeConsumer: optimizeConsumer,
		port:             cfg.ServerPort,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.port),
		Handler: a.Handler,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("server starting", "port", a.port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
