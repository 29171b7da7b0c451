// Package wiki resolves player photos and tournament logos from Wikidata and
// Wikimedia Commons, together with cleaned attribution records.
package wiki

import (
	"strings"

	"golang.org/x/text/cases"
)

// Property is a Wikidata property id.
type Property string

// Image-bearing properties.
const (
	PropLogo  Property = "P154"
	PropIcon  Property = "P2910"
	PropImage Property = "P18"

	propInstanceOf Property = "P31"
)

// LogoProperties is the probe order for tournament logos. The first property
// with a value wins.
var LogoProperties = []Property{PropLogo, PropIcon, PropImage}

// tennisClasses are the instance-of targets that mark a tennis tournament.
var tennisClasses = []string{"Q300007", "Q13219666"}

// tournamentKeywords mark a name as already tournament-specific.
var tournamentKeywords = []string{
	"open", "masters", "wimbledon", "cup", "championships",
	"finals", "tournament", "trophy", "classic", "games",
}

const (
	searchSuffix  = " open"
	sportKeyword  = "tennis"
	searchLimit   = 5
	commonsLimit  = 5
	excludedTitle = "vs"
)

var fold = cases.Fold()

// SearchQuery returns the entity search text for name: the name itself when
// it already contains a tournament keyword, otherwise name + " open".
func SearchQuery(name string) string {
	name = strings.TrimSpace(name)
	folded := fold.String(name)
	for _, kw := range tournamentKeywords {
		if strings.Contains(folded, kw) {
			return name
		}
	}
	return name + searchSuffix
}

func containsFold(s, substr string) bool {
	return strings.Contains(fold.String(s), fold.String(substr))
}
