package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP server
	Port string

	// RSS settings
	FeedsConfigPath  string
	UserAgent        string
	FetchTimeout     time.Duration
	FetchConcurrency int

	// Pipeline settings
	MaxArticles int

	// Retry policy for feed fetches
	RetryAttempts int
	RetryDelay    time.Duration

	// App settings
	Debug bool
}

// Some feeds reject requests with a default Go user agent, so pretend to be a browser.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120"

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Port:             "8080",
		FeedsConfigPath:  "configs/feeds.yaml",
		UserAgent:        defaultUserAgent,
		FetchTimeout:     15 * time.Second,
		FetchConcurrency: 6,
		MaxArticles:      300,
		RetryAttempts:    2,
		RetryDelay:       2 * time.Second,
	}

	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.UserAgent = getEnvOrDefault("USER_AGENT", cfg.UserAgent)

	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("FETCH_CONCURRENCY"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchConcurrency = val
		}
	}
	if v := os.Getenv("MAX_ARTICLES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxArticles = val
		}
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryAttempts = val
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.FeedsConfigPath == "" {
		return fmt.Errorf("FEEDS_CONFIG_PATH is required")
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FETCH_CONCURRENCY must be at least 1")
	}
	if c.MaxArticles < 1 {
		return fmt.Errorf("MAX_ARTICLES must be at least 1")
	}
	return nil
}
