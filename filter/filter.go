package filter

import (
	"strconv"
	"strings"

	"pcs-scraper/config"
	"pcs-scraper/models"
)

// Filter trims extracted race results for downstream analysis.
type Filter struct {
	cfg *config.Config
}

// NewFilter creates a new Filter instance.
func NewFilter(cfg *config.Config) *Filter {
	return &Filter{
		cfg: cfg,
	}
}

// ApplyFilters filters race results based on the configuration.
func (f *Filter) ApplyFilters(results []models.RaceResult) []models.RaceResult {
	var filtered []models.RaceResult

	for _, result := range results {
		if f.matchesFilters(result) {
			filtered = append(filtered, result)
		}
	}

	return filtered
}

// matchesFilters checks if a result matches all filter criteria.
func (f *Filter) matchesFilters(result models.RaceResult) bool {
	if f.cfg.Filters.Season != "" && result.RaceYear != f.cfg.Filters.Season {
		return false
	}

	if f.cfg.Filters.Classification != "" &&
		!strings.Contains(result.Classification, f.cfg.Filters.Classification) {
		return false
	}

	// A "-" distance means the source didn't report one; such rows pass
	// the distance filter rather than being dropped.
	if f.cfg.Filters.MinDistance > 0 {
		if km, err := strconv.ParseFloat(result.Distance, 64); err == nil && km < f.cfg.Filters.MinDistance {
			return false
		}
	}

	return true
}
