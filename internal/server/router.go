package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/telhawk-systems/larkrelay/internal/handlers"
	"github.com/telhawk-systems/larkrelay/internal/middleware"
)

// NewRouter constructs a ServeMux with the relay routes registered.
func NewRouter(h *handlers.WebhookHandler) http.Handler {
	mux := http.NewServeMux()

	// Inbound Linear webhook
	mux.HandleFunc("/webhook", h.HandleWebhook)

	// Health endpoints
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/healthz", h.Health)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.RequestID(mux)
}
