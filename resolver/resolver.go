package resolver

import (
	"fmt"
	"strings"
)

// BaseURL is the root of the source site.
const BaseURL = "https://www.procyclingstats.com"

// resultsQuery is the fixed filter set of the results endpoint. Only the
// offset and rider id vary; limit stays at the server maximum of 100.
const resultsQuery = "rider.php?xseason=&zxseason=&pxseason=equal&sort=date&race=&km1=&zkm1=&pkm1=equal" +
	"&limit=100&offset=%s&topx=&ztopx=&ptopx=smallerorequal&type=&znation=&continent=&pnts=&zpnts=&ppnts=equal" +
	"&level=&rnk=&zrnk=&prnk=equal&exclude_tt=0&racedate=&zracedate=&pracedate=equal&name=&pname=contains" +
	"&category=&profile_score=&pprofile_score=largerorequal&filter=Filter&id=%s&p=results"

// ResolutionError reports a name that cannot be mapped to a rider page.
type ResolutionError struct {
	Name string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve rider name %q", e.Name)
}

// RiderURL maps a rider name to their page URL. The name can be either the
// display form ("Wout van Aert") or the site's slug form ("wout-van-aert",
// with a numeric suffix for duplicate names, e.g. "benjamin-thomas-2").
func RiderURL(base, name string) (string, error) {
	slug := Slug(name)
	if slug == "" {
		return "", &ResolutionError{Name: name}
	}
	return base + "/rider/" + slug, nil
}

// Slug normalizes a display name into the site's URL slug.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// RiderID recovers the canonical rider identifier from a resolved page URL.
func RiderID(riderURL string) string {
	return riderURL[strings.LastIndex(riderURL, "/")+1:]
}

// ResultsURL builds one page of the paginated results endpoint.
func ResultsURL(base, riderID, offset string) string {
	return base + "/" + fmt.Sprintf(resultsQuery, offset, riderID)
}
