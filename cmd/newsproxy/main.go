package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/naveenspark/courtside/internal/config"
	"github.com/naveenspark/courtside/internal/logger"
	"github.com/naveenspark/courtside/internal/metrics"
	"github.com/naveenspark/courtside/internal/newsproxy"
	"github.com/naveenspark/courtside/pkg/client"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", "", "config file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env, cfg.LogLevel, os.Stdout)
	slog.SetDefault(log)

	if cfg.NewsAPIKey == "" {
		return errors.New("COURTSIDE_NEWS_API_KEY is required")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewManager(metrics.WithRegistry(reg))

	var cache newsproxy.Cache = newsproxy.NopCache{}
	if cfg.RedisURL != "" {
		rc, err := newsproxy.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rc.Close() //nolint:errcheck
		cache = rc
		log.Info("news cache enabled", "ttl", cfg.NewsCacheTTL)
	} else if cfg.IsProd() {
		log.Warn("news cache disabled in prod, every request reaches the upstream")
	}

	gw := client.NewGateway(client.UpstreamNewsAPI, cfg.NewsAPIURL, cfg.ThirdPartyTimeout,
		client.WithHeader(newsproxy.APIKeyHeader, cfg.NewsAPIKey),
		client.WithLogger(log),
		client.WithMetrics(m),
	)
	up := newsproxy.NewUpstream(gw, cfg.NewsLanguage, cache, cfg.NewsCacheTTL, log, m)

	srv := &http.Server{
		Addr:              cfg.ProxyAddr,
		Handler:           newsproxy.New(up, log, m, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info("news proxy started", "addr", cfg.ProxyAddr, "upstream", cfg.NewsAPIURL, "language", cfg.NewsLanguage)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	log.Info("news proxy stopped")
	return nil
}
