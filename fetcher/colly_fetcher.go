package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog/log"
)

// CollyFetcher implements the Fetcher interface using colly with a
// per-domain rate limit, for bulk race-history pulls that should stay
// polite toward the source.
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance. URL revisits are
// allowed because the first results offset is fetched twice: once for
// offset discovery and once as a regular page.
func NewCollyFetcher(userAgent string, delay time.Duration) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*procyclingstats.*",
		Parallelism: 1,
		Delay:       delay,
	})
	return &CollyFetcher{collector: c}
}

// Fetch implements the Fetcher interface.
func (cf *CollyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Clone keeps the shared rate limit but gives this call its own
	// callbacks.
	c := cf.collector.Clone()

	var body string
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit %s: %w", url, err)
	}
	c.Wait()

	if fetchErr != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, fetchErr)
	}
	if body == "" {
		return "", fmt.Errorf("failed to fetch %s: empty response", url)
	}
	log.Debug().Str("url", url).Int("bytes", len(body)).Msg("fetched page")
	return body, nil
}
