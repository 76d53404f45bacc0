package fetcher

import (
	"context"
	"fmt"
	"time"

	"pcs-scraper/config"
)

// Fetcher interface defines the contract for page-fetching implementations.
// Tests inject fakes through it to run extraction without a network.
type Fetcher interface {
	// Fetch retrieves the document at the given URL as raw HTML.
	Fetch(ctx context.Context, url string) (string, error)
}

// New selects a fetcher implementation from the configuration.
func New(cfg *config.Config) (Fetcher, error) {
	switch cfg.Source.Fetcher {
	case "", "resty":
		return NewRestyFetcher(cfg.Source.UserAgent), nil
	case "colly":
		return NewCollyFetcher(cfg.Source.UserAgent, time.Duration(cfg.Source.DelaySeconds)*time.Second), nil
	case "rod":
		return NewRodFetcher()
	default:
		return nil, fmt.Errorf("unknown fetcher %q", cfg.Source.Fetcher)
	}
}
