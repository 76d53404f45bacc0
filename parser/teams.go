package parser

import (
	"pcs-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// Team hrefs look like "team/<slug>-<year>": a 5-character "team/" prefix,
// a 5-character "-YYYY" suffix, and the year as the last 4 characters.
const (
	teamHrefPrefix = 5
	teamHrefSuffix = 5
	teamYearLen    = 4
)

// TeamsParser extracts a rider's season-by-season team history.
type TeamsParser struct{}

// NewTeamsParser creates a new TeamsParser instance.
func NewTeamsParser() *TeamsParser {
	return &TeamsParser{}
}

// Parse walks the team-history list's main entries in document order (most
// recent season first, per the site's convention). A rider without recorded
// teams yields an empty slice, not an error.
func (p *TeamsParser) Parse(doc *goquery.Document) ([]models.TeamSeason, error) {
	list := doc.Find("ul.list.rdr-teams")
	if list.Length() == 0 {
		return nil, &StructureError{Section: "team history list"}
	}

	var teams []models.TeamSeason
	var err error
	list.Find("li.main").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		link := li.Find("a").First()
		if link.Length() == 0 {
			err = &StructureError{Section: "team link"}
			return false
		}
		href := link.AttrOr("href", "")
		slug, year, refErr := TeamRef(href)
		if refErr != nil {
			err = refErr
			return false
		}
		teams = append(teams, models.TeamSeason{
			Season:   li.Find("div.season").First().Text(),
			TeamName: link.Text(),
			TeamHref: href,
			TeamSlug: slug,
			TeamYear: year,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// TeamRef derives the canonical team slug and reference year from a team
// href by fixed-offset slicing. The offsets hold only as long as the site's
// URL scheme does.
func TeamRef(href string) (slug, year string, err error) {
	if len(href) < teamHrefPrefix+teamHrefSuffix {
		return "", "", &ParseError{Field: "team href", Raw: href}
	}
	return href[teamHrefPrefix : len(href)-teamHrefSuffix], href[len(href)-teamYearLen:], nil
}
