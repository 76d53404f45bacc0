package rider

import "pcs-scraper/fetcher"

// Option configures a Rider during construction.
type Option func(*Rider)

// WithFetcher replaces the default HTTP fetcher. Tests use this to serve
// canned pages.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(r *Rider) {
		r.fetch = f
	}
}

// WithBaseURL points the rider at a different source root.
func WithBaseURL(base string) Option {
	return func(r *Rider) {
		r.baseURL = base
	}
}

// WithConcurrency bounds how many race-history pages are fetched at once.
// Values below 2 keep the fetch sequential; page order in the output is
// preserved either way.
func WithConcurrency(n int) Option {
	return func(r *Rider) {
		r.concurrency = n
	}
}

// WithSkipTrailingRow overrides the policy of dropping the last row of
// every results page (a pagination artifact of the source).
func WithSkipTrailingRow(skip bool) Option {
	return func(r *Rider) {
		r.results.SkipTrailingRow = skip
	}
}
