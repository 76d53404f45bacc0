// Package rider ties the pipeline together: resolve a rider name to their
// page, fetch it once, and derive profile, team-history and race-history
// data from the parsed document.
package rider

import (
	"context"
	"fmt"
	"strings"

	"pcs-scraper/config"
	"pcs-scraper/fetcher"
	"pcs-scraper/models"
	"pcs-scraper/pagination"
	"pcs-scraper/parser"
	"pcs-scraper/resolver"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Rider owns one fetched copy of an athlete's page. All profile and team
// fields derive from that single immutable document; race history issues
// its own requests against the paginated results endpoint.
type Rider struct {
	url         string
	doc         *goquery.Document
	fetch       fetcher.Fetcher
	baseURL     string
	concurrency int

	profile *parser.ProfileParser
	teams   *parser.TeamsParser
	results *parser.ResultsParser
}

// New resolves the rider's page, fetches it and parses it. The name can be
// the display form ("Wout van Aert") or the site's slug form.
func New(ctx context.Context, name string, opts ...Option) (*Rider, error) {
	r := &Rider{
		baseURL:     resolver.BaseURL,
		concurrency: 1,
		profile:     parser.NewProfileParser(),
		teams:       parser.NewTeamsParser(),
		results:     parser.NewResultsParser(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fetch == nil {
		f, err := fetcher.New(config.GetDefaultConfig())
		if err != nil {
			return nil, err
		}
		r.fetch = f
	}

	u, err := resolver.RiderURL(r.baseURL, name)
	if err != nil {
		return nil, err
	}
	r.url = u

	body, err := r.fetch.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rider page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	r.doc = doc
	log.Debug().Str("url", u).Msg("rider page loaded")
	return r, nil
}

// URL returns the resolved rider page URL.
func (r *Rider) URL() string {
	return r.url
}

// Profile returns the full biographical snapshot.
func (r *Rider) Profile() (*models.Profile, error) {
	return r.profile.Parse(r.doc)
}

// Per-field accessors mirror the profile extractors so callers can keep
// partial data when a single field fails.

func (r *Rider) Name() (string, error)        { return r.profile.Name(r.doc) }
func (r *Rider) CurrentTeam() (string, error) { return r.profile.CurrentTeam(r.doc) }
func (r *Rider) Age() (int, error)            { return r.profile.Age(r.doc) }
func (r *Rider) Nationality() (string, error) { return r.profile.Nationality(r.doc) }
func (r *Rider) Height() (*float64, error)    { return r.profile.Height(r.doc) }
func (r *Rider) Weight() (*float64, error)    { return r.profile.Weight(r.doc) }
func (r *Rider) Strava() models.StravaRef     { return r.profile.Strava(r.doc) }
func (r *Rider) Ranks() (models.Ranks, error) { return r.profile.Ranks(r.doc) }

// TeamHistory returns the rider's season-by-season team history, most
// recent season first.
func (r *Rider) TeamHistory() ([]models.TeamSeason, error) {
	return r.teams.Parse(r.doc)
}

// RaceHistory fetches the rider's complete race history from the paginated
// results endpoint: a discovery query enumerates the valid offsets, then
// every offset page is fetched and its rows concatenated in ascending
// offset order.
func (r *Rider) RaceHistory(ctx context.Context) ([]models.RaceResult, error) {
	id := resolver.RiderID(r.url)

	discovery, err := r.fetchResultsDoc(ctx, id, "0")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results discovery page: %w", err)
	}
	offsets, err := r.results.Offsets(discovery)
	if err != nil {
		return nil, err
	}
	plan := pagination.Plan(offsets)

	pages, err := pagination.FetchAll(ctx, plan, r.concurrency, func(ctx context.Context, offset string) (string, error) {
		return r.fetch.Fetch(ctx, resolver.ResultsURL(r.baseURL, id, offset))
	})
	if err != nil {
		return nil, err
	}

	var all []models.RaceResult
	for i, page := range pages {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		if err != nil {
			return nil, fmt.Errorf("failed to parse results page at offset %s: %w", plan[i], err)
		}
		rows, err := r.results.Rows(doc)
		if err != nil {
			return nil, fmt.Errorf("offset %s: %w", plan[i], err)
		}
		all = append(all, rows...)
	}
	log.Info().Str("rider", id).Int("pages", len(pages)).Int("results", len(all)).Msg("race history assembled")
	return all, nil
}

func (r *Rider) fetchResultsDoc(ctx context.Context, id, offset string) (*goquery.Document, error) {
	body, err := r.fetch.Fetch(ctx, resolver.ResultsURL(r.baseURL, id, offset))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}
