package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := newAPIConfig(os.Stdout)
	cfg.logger.Debug("configuration loaded")

	mux := http.NewServeMux()

	mux.HandleFunc("/api/links", cfg.handlerLinks)
	mux.HandleFunc("/api/link", cfg.handlerLink)
	mux.HandleFunc("/healthz", cfg.handlerHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	handler := cfg.loggingMiddleware(metricsMiddleware(corsMiddleware(mux)))

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: handler,
	}

	cfg.logger.Info("starting server", "port", cfg.port)
	err := server.ListenAndServe()
	if err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
