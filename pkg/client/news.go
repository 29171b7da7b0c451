package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/naveenspark/courtside/pkg/domain"
)

// News reads tennis headlines through the news proxy. The upstream API key
// lives only on the proxy.
type News struct {
	gw *Gateway
}

// NewNews creates a news client on gw.
func NewNews(gw *Gateway) *News {
	return &News{gw: gw}
}

// TennisNews returns popular tennis articles, optionally limited to sources.
func (n *News) TennisNews(ctx context.Context, sources []string) (*domain.NewsFeed, error) {
	params := url.Values{}
	if len(sources) > 0 {
		params.Set("sources", strings.Join(sources, ","))
	}

	var feed domain.NewsFeed
	if err := n.gw.Get(ctx, "/api/news", params, &feed); err != nil {
		return nil, fmt.Errorf("client.TennisNews: %w", err)
	}
	return &feed, nil
}

// Sources lists the sports publishers known to the news API.
func (n *News) Sources(ctx context.Context) ([]domain.NewsSource, error) {
	var list domain.SourceList
	if err := n.gw.Get(ctx, "/api/news/sources", nil, &list); err != nil {
		return nil, fmt.Errorf("client.Sources: %w", err)
	}
	return list.Sources, nil
}
