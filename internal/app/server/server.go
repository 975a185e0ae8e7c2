// Package server wires configuration, ingestion and the HTTP surface.
package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"custoplan/internal/ingest"
	"custoplan/internal/platform/config"
	"custoplan/internal/platform/metrics"
	productivityhandler "custoplan/internal/transport/http/handlers/productivity"
	workforcehandler "custoplan/internal/transport/http/handlers/workforce"
	"custoplan/internal/transport/http/middleware"
)

// NewRouter assembles the full HTTP handler tree. Split from Run so
// tests can drive the router without binding a socket.
func NewRouter(cfg *config.Config, loader *ingest.Loader) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics)
		router.Handle("/metrics", metrics.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		for _, path := range []string{cfg.WorkforceWorkbook, cfg.ProductivityWorkbook} {
			if _, err := os.Stat(path); err != nil {
				http.Error(w, "data source not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		workforceHandler := workforcehandler.NewHandler(loader, cfg.WorkforceWorkbook, cfg.DefaultTopN)
		workforceHandler.RegisterRoutes(r)

		productivityHandler := productivityhandler.NewHandler(loader, cfg.ProductivityWorkbook)
		productivityHandler.RegisterRoutes(r)
	})

	return router
}

// Run loads configuration and serves until the process exits.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	loader := ingest.NewLoader(cfg.WorkerSheet, cfg.ThirdPartySheet, cfg.EarningsCatalog, cfg.DeductionsCatalog)
	router := NewRouter(cfg, loader)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("custoplan listening on %s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
