package rss

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"renews/internal/retry"
)

// Feed is one configured syndication source.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// FeedsConfig is YAML config structure
// feeds:
//   - name: Reinsurance News
//     url: https://...
type FeedsConfig struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeeds reads the feed list from a YAML file.
func LoadFeeds(path string) ([]Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("no feeds configured in %s", path)
	}
	for i, feed := range cfg.Feeds {
		if feed.URL == "" {
			return nil, fmt.Errorf("feed %d has no url", i)
		}
	}
	return cfg.Feeds, nil
}

// Fetcher downloads and parses a single feed.
type Fetcher struct {
	userAgent string
	client    *http.Client
	retry     retry.Config
}

func NewFetcher(userAgent string, timeout time.Duration, retryCfg retry.Config) *Fetcher {
	return &Fetcher{
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		retry:     retryCfg,
	}
}

// Fetch retrieves and parses one feed, returning its raw items.
// Callers decide what a failure means; Fetch itself never panics or logs.
// A fresh gofeed parser per call keeps concurrent fetches race-free.
func (f *Fetcher) Fetch(ctx context.Context, feed Feed) ([]*gofeed.Item, error) {
	parser := gofeed.NewParser()
	parser.UserAgent = f.userAgent
	parser.Client = f.client

	var items []*gofeed.Item

	err := retry.Do(ctx, f.retry, func() error {
		parsed, err := parser.ParseURLWithContext(feed.URL, ctx)
		if err != nil {
			return err
		}
		items = parsed.Items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feed.URL, err)
	}

	return items, nil
}
