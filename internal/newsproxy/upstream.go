package newsproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/naveenspark/courtside/internal/metrics"
	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

const (
	everythingPath = "/v2/everything"
	sourcesPath    = "/v2/top-headlines/sources"

	newsQuery    = "tennis"
	newsSort     = "popularity"
	newsCategory = "sports"
)

// Upstream queries the news API with the server-held key and caches the
// responses.
type Upstream struct {
	gw       *client.Gateway
	language string
	cache    Cache
	ttl      time.Duration
	log      *slog.Logger
	metrics  *metrics.Manager
}

// NewUpstream creates an Upstream. gw must already carry the X-Api-Key
// header; see APIKeyHeader.
func NewUpstream(gw *client.Gateway, language string, cache Cache, ttl time.Duration, log *slog.Logger, m *metrics.Manager) *Upstream {
	if cache == nil {
		cache = NopCache{}
	}
	return &Upstream{gw: gw, language: language, cache: cache, ttl: ttl, log: log, metrics: m}
}

// APIKeyHeader is the header the news API reads its key from.
const APIKeyHeader = "X-Api-Key"

// Everything returns popular tennis articles, optionally restricted to a
// comma separated list of source ids.
func (u *Upstream) Everything(ctx context.Context, sources string) (*domain.NewsFeed, error) {
	params := url.Values{}
	params.Set("q", newsQuery)
	params.Set("language", u.language)
	params.Set("sortBy", newsSort)
	if s := strings.TrimSpace(sources); s != "" {
		params.Set("sources", s)
	}

	var feed domain.NewsFeed
	if err := u.fetch(ctx, everythingPath, params, &feed); err != nil {
		return nil, fmt.Errorf("newsproxy.Everything: %w", err)
	}
	return &feed, nil
}

// Sources lists the sports publishers in the configured language.
func (u *Upstream) Sources(ctx context.Context) (*domain.SourceList, error) {
	params := url.Values{}
	params.Set("language", u.language)
	params.Set("category", newsCategory)

	var list domain.SourceList
	if err := u.fetch(ctx, sourcesPath, params, &list); err != nil {
		return nil, fmt.Errorf("newsproxy.Sources: %w", err)
	}
	return &list, nil
}

func (u *Upstream) fetch(ctx context.Context, path string, params url.Values, out any) error {
	key := path + "?" + params.Encode()

	body, ok, err := u.cache.Get(ctx, key)
	switch {
	case err != nil:
		u.metrics.RecordCache(metrics.CacheError)
		u.log.Warn("news cache read failed", "key", key, "error", err)
	case ok:
		u.metrics.RecordCache(metrics.CacheHit)
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		u.log.Warn("news cache entry unreadable", "key", key)
	default:
		u.metrics.RecordCache(metrics.CacheMiss)
	}

	var raw json.RawMessage
	if err := u.gw.Get(ctx, path, params, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := u.cache.Set(ctx, key, raw, u.ttl); err != nil {
		u.log.Warn("news cache write failed", "key", key, "error", err)
	}
	return nil
}
