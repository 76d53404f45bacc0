package parser

import (
	"regexp"
	"strconv"
	"strings"

	"pcs-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the rider page regions.
const (
	selTitle    = ".page-title"
	selInfoCont = ".rdr-info-cont"
	selSites    = "ul.list.horizontal.sites"
	selRankings = "ul.list.horizontal.rdr-rankings"
)

var heightPattern = regexp.MustCompile(`(\d+(?:\.\d+)?) m\b`)

// weightPattern only accepts whole-number kilogram tokens. The site has
// never published a fractional weight; if it ever does, Weight surfaces a
// ParseError instead of guessing.
var weightPattern = regexp.MustCompile(`(?:^|\s)(\d+) kg`)

// ProfileParser extracts the biographical fields from a rider page. Each
// extractor fails independently, so callers can keep partial profiles.
type ProfileParser struct{}

// NewProfileParser creates a new ProfileParser instance.
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// Parse extracts the full profile, failing fast on the first mandatory
// field that cannot be read.
func (p *ProfileParser) Parse(doc *goquery.Document) (*models.Profile, error) {
	name, err := p.Name(doc)
	if err != nil {
		return nil, err
	}
	team, err := p.CurrentTeam(doc)
	if err != nil {
		return nil, err
	}
	age, err := p.Age(doc)
	if err != nil {
		return nil, err
	}
	nationality, err := p.Nationality(doc)
	if err != nil {
		return nil, err
	}
	height, err := p.Height(doc)
	if err != nil {
		return nil, err
	}
	weight, err := p.Weight(doc)
	if err != nil {
		return nil, err
	}
	ranks, err := p.Ranks(doc)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		Name:        name,
		Team:        team,
		Age:         age,
		Nationality: nationality,
		Height:      height,
		Weight:      weight,
		Strava:      p.Strava(doc),
		Ranks:       ranks,
	}, nil
}

// Name returns the page-title heading with double spaces collapsed.
func (p *ProfileParser) Name(doc *goquery.Document) (string, error) {
	h1 := doc.Find(selTitle + " h1").First()
	if h1.Length() == 0 {
		return "", &StructureError{Section: "page title"}
	}
	name := strings.TrimSpace(h1.Text())
	return strings.ReplaceAll(name, "  ", " "), nil
}

// CurrentTeam returns the trailing label span of the title block verbatim.
func (p *ProfileParser) CurrentTeam(doc *goquery.Document) (string, error) {
	span := doc.Find(selTitle + " .main span").Last()
	if span.Length() == 0 {
		return "", &StructureError{Section: "title block team label"}
	}
	return span.Text(), nil
}

// Age extracts the integer between the first pair of parentheses in the
// info block.
func (p *ProfileParser) Age(doc *goquery.Document) (int, error) {
	info := doc.Find(selInfoCont).First()
	if info.Length() == 0 {
		return 0, &StructureError{Section: "info block"}
	}
	text := info.Text()
	open := strings.Index(text, "(")
	end := strings.Index(text, ")")
	if open < 0 || end < open {
		return 0, &StructureError{Section: "age parenthetical"}
	}
	raw := text[open+1 : end]
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Field: "age", Raw: raw}
	}
	return age, nil
}

// Nationality returns the text of the info block's first link.
func (p *ProfileParser) Nationality(doc *goquery.Document) (string, error) {
	link := doc.Find(selInfoCont).First().Find("a").First()
	if link.Length() == 0 {
		return "", &StructureError{Section: "nationality link"}
	}
	return link.Text(), nil
}

// Height returns the rider's height in meters, or nil when the info block
// does not report one.
func (p *ProfileParser) Height(doc *goquery.Document) (*float64, error) {
	info := doc.Find(selInfoCont).First()
	if info.Length() == 0 {
		return nil, &StructureError{Section: "info block"}
	}
	m := heightPattern.FindStringSubmatch(info.Text())
	if m == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, &ParseError{Field: "height", Raw: m[1]}
	}
	return &v, nil
}

// Weight returns the rider's weight in kilograms, or nil when the info
// block does not report one. A kilogram token that is not a whole number
// is a ParseError (see weightPattern).
func (p *ProfileParser) Weight(doc *goquery.Document) (*float64, error) {
	info := doc.Find(selInfoCont).First()
	if info.Length() == 0 {
		return nil, &StructureError{Section: "info block"}
	}
	text := info.Text()
	if !strings.Contains(text, " kg") {
		return nil, nil
	}
	m := weightPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, &ParseError{Field: "weight", Raw: text}
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, &ParseError{Field: "weight", Raw: m[1]}
	}
	return &v, nil
}

// Strava scans the social-links list for an entry pointing at Strava and
// returns its href plus the trailing path segment as the account id. Both
// fields stay empty when no such entry exists.
func (p *ProfileParser) Strava(doc *goquery.Document) models.StravaRef {
	var ref models.StravaRef
	doc.Find(selSites + " a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if !strings.Contains(href, "strava") {
			return
		}
		ref.Link = href
		if i := strings.LastIndex(href, "/"); i >= 0 {
			ref.ID = href[i+1:]
		}
	})
	return ref
}

// Ranks reads the rankings list's rank cells in document order: PCS first,
// UCI second. Any other cardinality means the page layout changed.
func (p *ProfileParser) Ranks(doc *goquery.Document) (models.Ranks, error) {
	list := doc.Find(selRankings)
	if list.Length() == 0 {
		return models.Ranks{}, &StructureError{Section: "rankings list"}
	}
	cells := list.Find("div.rnk")
	if cells.Length() != 2 {
		return models.Ranks{}, &StructureError{Section: "rankings list rank cells"}
	}
	var ranks models.Ranks
	var err error
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		raw := strings.TrimSpace(cell.Text())
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			field := "pcs rank"
			if i == 1 {
				field = "uci rank"
			}
			err = &ParseError{Field: field, Raw: raw}
			return false
		}
		if i == 0 {
			ranks.PCS = v
		} else {
			ranks.UCI = v
		}
		return true
	})
	if err != nil {
		return models.Ranks{}, err
	}
	return ranks, nil
}
