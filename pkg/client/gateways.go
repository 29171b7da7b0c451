package client

import (
	"log/slog"

	"github.com/naveenspark/courtside/internal/config"
	"github.com/naveenspark/courtside/internal/metrics"
)

// UserAgent identifies courtside to Wikimedia, which rejects anonymous clients.
const UserAgent = "courtside/1.0 (https://github.com/naveenspark/courtside)"

// Upstream names used in logs and metrics.
const (
	UpstreamBackend     = "backend"
	UpstreamBackendAuth = "backend-auth"
	UpstreamWikidata    = "wikidata"
	UpstreamCommons     = "commons"
	UpstreamNews        = "news"
	UpstreamNewsAPI     = "newsapi"
)

// Gateways bundles one gateway per upstream.
type Gateways struct {
	Backend     *Gateway
	BackendAuth *Gateway
	Wikidata    *Gateway
	Commons     *Gateway
	News        *Gateway
}

// NewGateways builds the preconfigured gateways. Only BackendAuth reads the
// token store. m may be nil.
func NewGateways(cfg *config.Config, store TokenSource, log *slog.Logger, m *metrics.Manager) *Gateways {
	common := []Option{WithLogger(log), WithMetrics(m)}
	wiki := append([]Option{WithHeader("User-Agent", UserAgent)}, common...)

	return &Gateways{
		Backend:     NewGateway(UpstreamBackend, cfg.BackendURL, cfg.BackendTimeout, common...),
		BackendAuth: NewGateway(UpstreamBackendAuth, cfg.BackendURL, cfg.BackendTimeout, append([]Option{WithBearer(store)}, common...)...),
		Wikidata:    NewGateway(UpstreamWikidata, cfg.WikidataURL, cfg.ThirdPartyTimeout, wiki...),
		Commons:     NewGateway(UpstreamCommons, cfg.CommonsURL, cfg.ThirdPartyTimeout, wiki...),
		News:        NewGateway(UpstreamNews, cfg.NewsProxyURL, cfg.ThirdPartyTimeout, common...),
	}
}
