package newsproxy

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) newsOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-news",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "Popular tennis news",
		Description: "Relays the news API everything search for tennis, sorted by popularity",
		Tags:        []string{"news"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) sourcesOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-news-sources",
		Method:      http.MethodGet,
		Path:        "/api/news/sources",
		Summary:     "Sports news sources",
		Tags:        []string{"news"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) healthOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check endpoint",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
