package fetcher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// RestyFetcher is the default implementation: one blocking GET per call, no
// retry. Transport failures surface immediately to the caller.
type RestyFetcher struct {
	client *resty.Client
}

// NewRestyFetcher creates a new RestyFetcher instance.
func NewRestyFetcher(userAgent string) *RestyFetcher {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)
	return &RestyFetcher{client: client}
}

// Fetch implements the Fetcher interface.
func (rf *RestyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := rf.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: status %s", url, res.Status())
	}
	log.Debug().Str("url", url).Int("bytes", len(res.Body())).Msg("fetched page")
	return string(res.Body()), nil
}
