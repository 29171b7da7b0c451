// Package config loads runtime settings for the courtside CLI and the news
// proxy from defaults, an optional config file, a .env file and COURTSIDE_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/naveenspark/courtside/internal/logger"
)

const (
	envPrefix  = "COURTSIDE"
	defaultDir = ".courtside"
)

// Config holds every tunable of the client and the proxy.
type Config struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	BackendURL        string        `mapstructure:"backend_url"`
	BackendTimeout    time.Duration `mapstructure:"backend_timeout"`
	WikidataURL       string        `mapstructure:"wikidata_url"`
	CommonsURL        string        `mapstructure:"commons_url"`
	NewsProxyURL      string        `mapstructure:"news_proxy_url"`
	ThirdPartyTimeout time.Duration `mapstructure:"third_party_timeout"`

	TokenPath string `mapstructure:"token_path"`
	LogPath   string `mapstructure:"log_path"`

	ProxyAddr    string        `mapstructure:"proxy_addr"`
	NewsAPIURL   string        `mapstructure:"news_api_url"`
	NewsAPIKey   string        `mapstructure:"news_api_key"`
	NewsLanguage string        `mapstructure:"news_language"`
	RedisURL     string        `mapstructure:"redis_url"`
	NewsCacheTTL time.Duration `mapstructure:"news_cache_ttl"`
}

// Load reads the configuration. configFile may be empty.
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("config.Load: .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	cfg.TokenPath = expandHome(cfg.TokenPath)
	cfg.LogPath = expandHome(cfg.LogPath)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, defaultDir)

	v.SetDefault("app_env", logger.EnvLocal)
	v.SetDefault("log_level", "")
	v.SetDefault("backend_url", "http://127.0.0.1:5000/api")
	v.SetDefault("backend_timeout", 15*time.Second)
	v.SetDefault("wikidata_url", "https://www.wikidata.org")
	v.SetDefault("commons_url", "https://commons.wikimedia.org")
	v.SetDefault("news_proxy_url", "http://127.0.0.1:8088")
	v.SetDefault("third_party_timeout", 5*time.Second)
	v.SetDefault("token_path", filepath.Join(dir, "token"))
	v.SetDefault("log_path", filepath.Join(dir, "courtside.log"))
	v.SetDefault("proxy_addr", ":8088")
	v.SetDefault("news_api_url", "https://newsapi.org")
	v.SetDefault("news_api_key", "")
	v.SetDefault("news_language", "es")
	v.SetDefault("redis_url", "")
	v.SetDefault("news_cache_ttl", 10*time.Minute)
}

func (c *Config) validate() error {
	switch c.Env {
	case logger.EnvLocal, logger.EnvDev, logger.EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}
	if c.BackendURL == "" {
		return errors.New("backend_url must not be empty")
	}
	if c.BackendTimeout <= 0 || c.ThirdPartyTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}

// IsProd reports whether the prod environment is selected.
func (c *Config) IsProd() bool {
	return c.Env == logger.EnvProd
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
