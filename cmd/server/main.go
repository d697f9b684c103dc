package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ssinval/internal/platform/config"
	"ssinval/internal/platform/httpserver"
	"ssinval/internal/platform/logger"
	"ssinval/internal/platform/metrics"
	ssinhandler "ssinval/internal/ssin/handler"
	ssinmetrics "ssinval/internal/ssin/metrics"
	ssinservice "ssinval/internal/ssin/service"
	"ssinval/pkg/platform/httputil"
	"ssinval/pkg/platform/middleware/metadata"
	"ssinval/pkg/platform/middleware/requestid"
	"ssinval/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Validation logic lives in pkg/domain/ssin.
func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := ssinservice.New(
		ssinservice.WithLogger(log),
		ssinservice.WithMetrics(ssinmetrics.New(reg)),
		ssinservice.WithMaxBatchSize(cfg.MaxBatchSize),
	)

	router := newRouter(log, metrics.New(reg), reg, ssinhandler.New(svc, log))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting ssin validation service", "addr", cfg.Addr, "env", cfg.Environment)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func newRouter(log *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer, ssin *ssinhandler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{ErrorLog: slog.NewLogLogger(log.Handler(), slog.LevelError)}))

	ssin.Register(r)
	return r
}
