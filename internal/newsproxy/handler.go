package newsproxy

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
)

// Handler serves the proxy operations.
type Handler struct {
	up         *Upstream
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler creates a Handler.
func NewHandler(up *Upstream, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{up: up, log: log, middleware: middleware}
}

// SetupRoutes registers the operations on api.
func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.newsOp(), h.news)
	huma.Register(api, h.sourcesOp(), h.sources)
	huma.Register(api, h.healthOp(), h.health)
}

func (h *Handler) news(ctx context.Context, in *NewsInput) (*NewsOutput, error) {
	feed, err := h.up.Everything(ctx, in.Sources)
	if err != nil {
		h.log.Error("news request failed", "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error502BadGateway("news upstream failed", err)
	}
	return &NewsOutput{Body: *feed}, nil
}

func (h *Handler) sources(ctx context.Context, _ *SourcesInput) (*SourcesOutput, error) {
	list, err := h.up.Sources(ctx)
	if err != nil {
		h.log.Error("sources request failed", "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error502BadGateway("news upstream failed", err)
	}
	return &SourcesOutput{Body: *list}, nil
}

func (h *Handler) health(_ context.Context, _ *HealthInput) (*HealthOutput, error) {
	h.log.Debug("health check request received")
	return &HealthOutput{Body: HealthResponse{Status: "OK"}}, nil
}
