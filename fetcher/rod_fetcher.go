package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

// RodFetcher renders pages in a headless browser. The source site serves
// server-rendered HTML today, so this is a fallback for the day it moves to
// client-side rendering.
type RodFetcher struct {
	browser *rod.Browser
}

// NewRodFetcher launches a headless browser session.
func NewRodFetcher() (*RodFetcher, error) {
	browser := rod.New()
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	return &RodFetcher{browser: browser}, nil
}

// Fetch implements the Fetcher interface.
func (rf *RodFetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := rf.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("failed to open page %s: %w", url, err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}
	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Warn().Str("url", url).Err(err).Msg("page did not stabilize, continuing anyway")
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML for %s: %w", url, err)
	}
	return html, nil
}

// Close shuts the browser down.
func (rf *RodFetcher) Close() error {
	return rf.browser.Close()
}
