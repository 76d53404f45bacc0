package models

// Profile is a point-in-time snapshot of a rider's page. Height and Weight
// are nil when the info block does not report them.
type Profile struct {
	Name        string
	Team        string
	Age         int
	Nationality string
	Height      *float64 // meters
	Weight      *float64 // kilograms
	Strava      StravaRef
	Ranks       Ranks
}

// StravaRef points at a rider's Strava account. Both fields are empty when
// the social-links list has no Strava entry.
type StravaRef struct {
	Link string
	ID   string
}

// Ranks holds the PCS and UCI ranking at fetch time.
type Ranks struct {
	PCS int
	UCI int
}

// TeamSeason is one season of a rider's team history. TeamSlug and TeamYear
// are derived from TeamHref by fixed-offset slicing of the site's URL scheme.
type TeamSeason struct {
	Season   string
	TeamName string
	TeamHref string
	TeamSlug string
	TeamYear string
}

// RaceResult is one row of the paginated results table. Empty cells carry
// the "-" sentinel rather than an empty string.
type RaceResult struct {
	Date           string
	Result         string
	RaceName       string
	RaceHref       string
	RaceSlug       string
	RaceYear       string
	Classification string
	Distance       string
	PCSPoints      string
	UCIPoints      string
}
