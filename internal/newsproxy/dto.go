package newsproxy

import "github.com/naveenspark/courtside/pkg/domain"

// NewsInput is the query of GET /api/news.
type NewsInput struct {
	Sources string `query:"sources" doc:"Comma separated source ids" example:"marca,as"`
}

// NewsOutput wraps the article feed.
type NewsOutput struct {
	Body domain.NewsFeed
}

// SourcesInput is the (empty) input of GET /api/news/sources.
type SourcesInput struct{}

// SourcesOutput wraps the source list.
type SourcesOutput struct {
	Body domain.SourceList
}

// HealthInput is the (empty) input of GET /api/health.
type HealthInput struct{}

// HealthOutput reports liveness.
type HealthOutput struct {
	Body HealthResponse
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}
