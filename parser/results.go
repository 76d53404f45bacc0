package parser

import (
	"strings"

	"pcs-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// Result table column layout after dropping the row-index column: date,
// result, race (exploded into four fields), classification, distance,
// PCS points, UCI points.
const (
	raceColumn     = 3
	plainCellCount = 6
)

// ResultsParser extracts race-result rows from one page of the paginated
// results endpoint.
type ResultsParser struct {
	// SkipTrailingRow drops the last row of every page. The source appends
	// a non-data row to each page body; whether that ever discards real
	// data on short pages is unverified, so the policy stays overridable.
	SkipTrailingRow bool
}

// NewResultsParser creates a ResultsParser with the observed page-boundary
// policy enabled.
func NewResultsParser() *ResultsParser {
	return &ResultsParser{SkipTrailingRow: true}
}

// Offsets enumerates the pagination offsets advertised by the page's offset
// selector, in document order.
func (p *ResultsParser) Offsets(doc *goquery.Document) ([]string, error) {
	sel := doc.Find(`select[name="offset"]`)
	if sel.Length() == 0 {
		return nil, &StructureError{Section: "offset selector"}
	}
	var offsets []string
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		offsets = append(offsets, opt.AttrOr("value", ""))
	})
	return offsets, nil
}

// Rows extracts the data rows of the page's results table body.
func (p *ResultsParser) Rows(doc *goquery.Document) ([]models.RaceResult, error) {
	body := doc.Find("tbody").First()
	if body.Length() == 0 {
		return nil, &StructureError{Section: "results table body"}
	}
	rows := body.Find("tr")
	keep := rows.Length()
	if p.SkipTrailingRow {
		keep--
	}

	var out []models.RaceResult
	var err error
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if i >= keep {
			return false
		}
		var rec *models.RaceResult
		rec, err = p.row(tr)
		if err != nil {
			return false
		}
		out = append(out, *rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// row assembles one RaceResult in column order. Column 0 is the row index
// and is discarded; empty cells become the "-" sentinel.
func (p *ResultsParser) row(tr *goquery.Selection) (*models.RaceResult, error) {
	var rec models.RaceResult
	var cells []string
	var err error
	tr.Find("td").EachWithBreak(func(j int, td *goquery.Selection) bool {
		switch j {
		case 0:
		case raceColumn:
			link := td.Find("a").First()
			if link.Length() == 0 {
				err = &StructureError{Section: "race link"}
				return false
			}
			rec.RaceName = link.Text()
			rec.RaceHref = link.AttrOr("href", "")
			rec.RaceSlug, rec.RaceYear, err = RaceRef(rec.RaceHref)
			if err != nil {
				return false
			}
		default:
			text := td.Text()
			if text == "" {
				text = "-"
			}
			cells = append(cells, text)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(cells) != plainCellCount {
		return nil, &StructureError{Section: "results table columns"}
	}

	rec.Date = cells[0]
	rec.Result = cells[1]
	rec.Classification = cells[2]
	rec.Distance = cells[3]
	rec.PCSPoints = cells[4]
	rec.UCIPoints = cells[5]
	return &rec, nil
}

// RaceRef derives the canonical race slug (path segment 1) and reference
// year (second-to-last segment) from a race href such as
// "race/tour-de-france/2023/stage-5".
func RaceRef(href string) (slug, year string, err error) {
	parts := strings.Split(href, "/")
	if len(parts) < 3 {
		return "", "", &ParseError{Field: "race href", Raw: href}
	}
	return parts[1], parts[len(parts)-2], nil
}
