package news

import (
	"context"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"renews/internal/classify"
	"renews/internal/geo"
	"renews/internal/logger"
	"renews/internal/metrics"
	"renews/internal/ratelimit"
	"renews/internal/rss"
	"renews/internal/scraper"
)

// FeedSource retrieves the raw items of one configured feed.
type FeedSource interface {
	Fetch(ctx context.Context, feed rss.Feed) ([]*gofeed.Item, error)
}

// Aggregator fans out over the configured feeds and flattens their items
// into enriched Articles.
type Aggregator struct {
	feeds     []rss.Feed
	source    FeedSource
	gazetteer *geo.Gazetteer
	limiter   *ratelimit.FetchLimiter
}

func NewAggregator(feeds []rss.Feed, source FeedSource, gazetteer *geo.Gazetteer, limiter *ratelimit.FetchLimiter) *Aggregator {
	return &Aggregator{
		feeds:     feeds,
		source:    source,
		gazetteer: gazetteer,
		limiter:   limiter,
	}
}

// Collect fetches every feed concurrently and returns the flattened article
// list. A feed that fails is logged and contributes nothing; it never aborts
// the batch. Cross-feed ordering is whatever completion order produced and
// carries no meaning; the query stage establishes final order.
func (a *Aggregator) Collect(ctx context.Context) []Article {
	results := make([][]Article, len(a.feeds))

	var wg sync.WaitGroup
	for i, feed := range a.feeds {
		wg.Add(1)
		go func(i int, feed rss.Feed) {
			defer wg.Done()

			if a.limiter != nil {
				if err := a.limiter.Acquire(ctx); err != nil {
					return
				}
				defer a.limiter.Release()
			}

			items, err := a.source.Fetch(ctx, feed)
			if err != nil {
				logger.Warn("feed fetch failed", "feed", feed.Name, "error", err)
				metrics.Global.IncrementFeedErrors()
				return
			}

			metrics.Global.IncrementFeedsFetched()
			logger.Debug("feed fetched", "feed", feed.Name, "items", len(items))
			results[i] = a.convert(feed, items)
		}(i, feed)
	}
	wg.Wait()

	var articles []Article
	for _, batch := range results {
		articles = append(articles, batch...)
	}

	metrics.Global.AddItemsProcessed(len(articles))
	return articles
}

// convert normalizes one feed's items and runs enrichment: plain-text
// summary, category, geotag.
func (a *Aggregator) convert(feed rss.Feed, items []*gofeed.Item) []Article {
	articles := make([]Article, 0, len(items))

	for _, item := range items {
		if item == nil || item.Title == "" {
			continue
		}

		summary := scraper.Snippet(item.Description)
		if summary == "" {
			summary = scraper.Snippet(item.Content)
		}

		articles = append(articles, Article{
			Title:    item.Title,
			Link:     item.Link,
			PubDate:  item.Published,
			Content:  summary,
			Source:   feed.Name,
			Category: classify.Classify(item.Title + " " + summary),
			Location: a.gazetteer.Resolve(item.Title, summary),
		})
	}

	return articles
}

// Run executes the whole pipeline for one request: fetch, flatten,
// deduplicate, filter, sort, cap.
func (a *Aggregator) Run(ctx context.Context, q Query) []Article {
	start := time.Now()
	defer func() {
		metrics.Global.RecordPipelineTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	collected := a.Collect(ctx)
	deduped := Deduplicate(collected)
	if dropped := len(collected) - len(deduped); dropped > 0 {
		metrics.Global.AddDuplicatesFiltered(dropped)
	}

	return Apply(deduped, q)
}
