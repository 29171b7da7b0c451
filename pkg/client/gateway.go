package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/naveenspark/courtside/internal/metrics"
)

// TokenSource yields the current bearer credential, if any.
type TokenSource interface {
	Get() (string, bool)
}

// Gateway is an HTTP client bound to one upstream. It sets the base address,
// timeout and default headers, optionally injects a bearer token, and logs
// every failure before returning it to the caller unchanged.
type Gateway struct {
	name       string
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	bearer     TokenSource
	log        *slog.Logger
	metrics    *metrics.Manager
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithBearer attaches the token from src to every request, when present.
func WithBearer(src TokenSource) Option {
	return func(g *Gateway) { g.bearer = src }
}

// WithLogger sets the error logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// WithMetrics records per-upstream counters and latencies.
func WithMetrics(m *metrics.Manager) Option {
	return func(g *Gateway) { g.metrics = m }
}

// WithHeader adds a default header.
func WithHeader(key, value string) Option {
	return func(g *Gateway) { g.headers.Set(key, value) }
}

// WithHTTPClient replaces the underlying client. Its timeout is overwritten
// by the gateway timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// NewGateway creates a gateway for the upstream called name.
func NewGateway(name, baseURL string, timeout time.Duration, opts ...Option) *Gateway {
	g := &Gateway{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		headers:    http.Header{},
		log:        slog.Default(),
	}
	g.headers.Set("Content-Type", "application/json")
	g.headers.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(g)
	}
	g.httpClient.Timeout = timeout
	return g
}

// Name returns the upstream name.
func (g *Gateway) Name() string { return g.name }

// BaseURL returns the configured base address.
func (g *Gateway) BaseURL() string { return g.baseURL }

// Timeout returns the per-request timeout.
func (g *Gateway) Timeout() time.Duration { return g.httpClient.Timeout }

// Get issues a GET for path with query and decodes the JSON response into out.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Do issues a request. body, when non-nil, is sent as JSON; out, when non-nil,
// receives the decoded response.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := g.do(ctx, method, path, query, body, out)

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeTransport
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			outcome = metrics.OutcomeHTTPError
		}
		g.log.Error("gateway request failed",
			"upstream", g.name,
			"method", method,
			"path", path,
			"outcome", outcome,
			"error", err,
		)
	}
	g.metrics.RecordUpstream(g.name, outcome, time.Since(start))
	return err
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for k, v := range g.headers {
		req.Header[k] = v
	}
	if g.bearer != nil {
		if tok, ok := g.bearer.Get(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		return g.httpError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (g *Gateway) httpError(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
	if readErr != nil {
		return &HTTPError{Upstream: g.name, StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
	}
	var apiErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Msg     string `json:"msg"`
	}
	if json.Unmarshal(respBody, &apiErr) == nil {
		for _, m := range []string{apiErr.Message, apiErr.Error, apiErr.Msg} {
			if m != "" {
				return &HTTPError{Upstream: g.name, StatusCode: resp.StatusCode, Message: m}
			}
		}
	}
	return &HTTPError{Upstream: g.name, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
}
