// Package pagination turns the results endpoint's discovered offsets into a
// fetch plan and reassembles the fetched pages in offset order, independent
// of how the pages are actually retrieved.
package pagination

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// FetchFunc retrieves one page of results for a pagination offset.
type FetchFunc func(ctx context.Context, offset string) (string, error)

// Plan orders the discovered offsets into a fetch plan, dropping empty
// values and duplicates while preserving document order.
func Plan(offsets []string) []string {
	seen := make(map[string]bool, len(offsets))
	var plan []string
	for _, off := range offsets {
		if off == "" || seen[off] {
			continue
		}
		seen[off] = true
		plan = append(plan, off)
	}
	return plan
}

// FetchAll fetches one page per offset and returns the bodies in plan
// order. At most concurrency requests are in flight at once; anything
// below 2 degenerates to the sequential fetch the source site sees from a
// browser. Any fetch failure fails the whole batch.
func FetchAll(ctx context.Context, plan []string, concurrency int, fetch FetchFunc) ([]string, error) {
	if concurrency <= 1 {
		pages := make([]string, len(plan))
		for i, off := range plan {
			body, err := fetch(ctx, off)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch offset %s: %w", off, err)
			}
			pages[i] = body
		}
		return pages, nil
	}

	pages := make([]string, len(plan))
	errs := make([]error, len(plan))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, off := range plan {
		wg.Add(1)
		go func(i int, off string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			pages[i], errs[i] = fetch(ctx, off)
		}(i, off)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch offset %s: %w", plan[i], err)
		}
	}
	log.Debug().Int("pages", len(pages)).Int("concurrency", concurrency).Msg("fetched result pages")
	return pages, nil
}
