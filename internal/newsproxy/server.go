// Package newsproxy serves the news API to the client without exposing the
// API key: requests are relayed server-side with the key attached and the
// responses cached in Redis.
package newsproxy

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/naveenspark/courtside/internal/metrics"
)

// New builds the proxy router. gatherer backs /metrics.
func New(up *Upstream, log *slog.Logger, m *metrics.Manager, gatherer prometheus.Gatherer) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(RequestID, Recovery(log), Metrics(m))

	cfg := huma.DefaultConfig("Courtside News Proxy", "1.0.0")
	api := humachi.New(mux, cfg)

	h := NewHandler(up, log, huma.Middlewares{NewLogger(log).Middleware()})
	h.SetupRoutes(api)

	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
