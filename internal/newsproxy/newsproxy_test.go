package newsproxy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/naveenspark/courtside/internal/metrics"
	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

const testKey = "super-secret-key"

type ProxySuite struct {
	suite.Suite
	mini     *miniredis.Miniredis
	upstream *httptest.Server
	hits     atomic.Int32
	status   int
	lastURL  string
	mux      http.Handler
}

func TestProxySuite(t *testing.T) {
	suite.Run(t, new(ProxySuite))
}

func (s *ProxySuite) SetupTest() {
	s.hits.Store(0)
	s.status = http.StatusOK
	s.mini = miniredis.RunT(s.T())

	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.lastURL = r.URL.String()
		if r.Header.Get(APIKeyHeader) != testKey {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`) //nolint:errcheck
			return
		}
		if s.status != http.StatusOK {
			w.WriteHeader(s.status)
			io.WriteString(w, `{"status":"error","message":"rate limited"}`) //nolint:errcheck
			return
		}
		switch r.URL.Path {
		case everythingPath:
			io.WriteString(w, `{"status":"ok","totalResults":1,"articles":[{"title":"Alcaraz wins Madrid","url":"https://news/1","publishedAt":"2024-05-05T10:00:00Z"}]}`) //nolint:errcheck
		case sourcesPath:
			io.WriteString(w, `{"status":"ok","sources":[{"id":"marca","name":"Marca","category":"sports","language":"es"}]}`) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	s.T().Cleanup(s.upstream.Close)

	s.mux = s.build(NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()})), testKey)
}

func (s *ProxySuite) build(cache Cache, key string) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.NewManager(metrics.WithRegistry(reg))
	gw := client.NewGateway(client.UpstreamNewsAPI, s.upstream.URL, 5*time.Second,
		client.WithHeader(APIKeyHeader, key), client.WithLogger(log), client.WithMetrics(m))
	up := NewUpstream(gw, "es", cache, time.Minute, log, m)
	return New(up, log, m, reg)
}

func (s *ProxySuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *ProxySuite) TestNewsRelaysUpstream() {
	rec := s.get("/api/news?sources=marca,as")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var feed domain.NewsFeed
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &feed))
	s.Require().Len(feed.Articles, 1)
	s.Equal("Alcaraz wins Madrid", feed.Articles[0].Title)

	s.Contains(s.lastURL, "q=tennis")
	s.Contains(s.lastURL, "language=es")
	s.Contains(s.lastURL, "sortBy=popularity")
	s.Contains(s.lastURL, "sources=marca%2Cas")
	s.NotContains(s.lastURL, testKey)
	s.NotContains(rec.Body.String(), testKey)
}

func (s *ProxySuite) TestSourcesRelaysUpstream() {
	rec := s.get("/api/news/sources")
	s.Require().Equal(http.StatusOK, rec.Code)

	var list domain.SourceList
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list.Sources, 1)
	s.Equal("marca", list.Sources[0].ID)
	s.Contains(s.lastURL, "category=sports")
}

func (s *ProxySuite) TestResponsesAreCached() {
	s.Equal(http.StatusOK, s.get("/api/news").Code)
	s.Equal(http.StatusOK, s.get("/api/news").Code)
	s.Equal(int32(1), s.hits.Load())

	keys := s.mini.Keys()
	s.Require().Len(keys, 1)
	s.True(strings.HasPrefix(keys[0], keyPrefix+":"+everythingPath))
	s.Equal(time.Minute, s.mini.TTL(keys[0]))

	s.mini.FastForward(2 * time.Minute)
	s.Equal(http.StatusOK, s.get("/api/news").Code)
	s.Equal(int32(2), s.hits.Load())
}

func (s *ProxySuite) TestDifferentSourcesCachedSeparately() {
	s.get("/api/news?sources=marca")
	s.get("/api/news?sources=as")
	s.Equal(int32(2), s.hits.Load())
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (s *ProxySuite) TestCacheFailureIsBypassed() {
	mux := s.build(brokenCache{}, testKey)
	for range 2 {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))
		s.Equal(http.StatusOK, rec.Code)
	}
	s.Equal(int32(2), s.hits.Load())
}

func (s *ProxySuite) TestUpstreamErrorIsBadGateway() {
	s.status = http.StatusTooManyRequests

	rec := s.get("/api/news")
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "rate limited")
	s.Empty(s.mini.Keys())
}

func (s *ProxySuite) TestInvalidKeyDoesNotLeak() {
	mux := s.build(NopCache{}, "wrong")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))

	s.Equal(http.StatusBadGateway, rec.Code)
	s.NotContains(rec.Body.String(), "wrong")
}

func (s *ProxySuite) TestHealth() {
	rec := s.get("/api/health")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"OK"}`, stripSchema(s.T(), rec.Body.Bytes()))
}

func (s *ProxySuite) TestMetricsEndpoint() {
	s.get("/api/news")
	rec := s.get("/metrics")
	s.Require().Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `courtside_proxy_http_requests_total{route="/api/news",status="200"} 1`)
	s.Contains(body, `courtside_proxy_cache_lookups_total{result="miss"} 1`)
	s.Contains(body, `courtside_gateway_requests_total{outcome="ok",upstream="newsapi"} 1`)
}

func (s *ProxySuite) TestRequestID() {
	rec := s.get("/api/health")
	s.NotEmpty(rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	s.Equal("abc-123", rec.Header().Get(RequestIDHeader))
}

// stripSchema drops the $schema link huma adds to JSON bodies.
func stripSchema(t *testing.T, body []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "$schema")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}

func TestNopCache(t *testing.T) {
	var c NopCache
	require.NoError(t, c.Set(t.Context(), "k", []byte("v"), time.Second))
	_, ok, err := c.Get(t.Context(), "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRecovery(t *testing.T) {
	h := Recovery(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
