// Package normalize converts player records between the editing form's
// representation and the backend's storage representation.
package normalize

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/naveenspark/courtside/pkg/domain"
)

// PlaceholderBirthDate is stored when the form has no birth date.
const PlaceholderBirthDate = "01-01-1800"

const unknown = "unknown"

// Normalizer performs the two conversions. Both are total: malformed input
// degrades to a default and is logged, never returned as an error.
type Normalizer struct {
	log *slog.Logger
}

// New creates a Normalizer that reports degraded fields to log.
func New(log *slog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// IntoBackend converts a form record for storage. Zero numbers and empty
// identifiers become the sentinel.
func (n *Normalizer) IntoBackend(f domain.PlayerForm) domain.Player {
	p := domain.Player{
		PlayerID:   f.PlayerID,
		Fullname:   f.Fullname,
		NameFirst:  orSentinel(f.NameFirst),
		NameLast:   orSentinel(f.NameLast),
		Hand:       orSentinel(f.Hand),
		Country:    orSentinel(f.Country),
		WikidataID: orSentinel(f.WikidataID),
		Instagram:  orSentinel(f.Instagram),
		Facebook:   orSentinel(f.Facebook),
		XTwitter:   orSentinel(f.XTwitter),
		Height:     numberOrSentinel(f.Height),
		Weight:     numberOrSentinel(f.Weight),
		ProSince:   numberOrSentinel(f.ProSince),
	}

	if f.BirthDate == "" {
		p.BirthDate = PlaceholderBirthDate
	} else {
		p.BirthDate = n.swapDate(f.BirthDate)
	}
	return p
}

// IntoForm converts a stored record for editing. Sentinels become zero
// values and the country code is upper-cased.
func (n *Normalizer) IntoForm(p domain.Player) domain.PlayerForm {
	f := domain.PlayerForm{
		PlayerID:   p.PlayerID,
		Fullname:   p.Fullname,
		NameFirst:  p.NameFirst,
		NameLast:   p.NameLast,
		Hand:       p.Hand,
		WikidataID: p.WikidataID,
		Instagram:  p.Instagram,
		Facebook:   p.Facebook,
		XTwitter:   p.XTwitter,
		Height:     n.number("height", p.Height),
		Weight:     n.number("weight", p.Weight),
		ProSince:   n.number("pro_since", p.ProSince),
	}

	switch {
	case p.Country == "", strings.EqualFold(p.Country, unknown):
		f.Country = domain.Sentinel
	default:
		f.Country = strings.ToUpper(p.Country)
	}

	if p.BirthDate != "" {
		f.BirthDate = n.swapDate(p.BirthDate)
	}
	return f
}

// swapDate exchanges the first and last hyphen-separated parts, turning
// dd-mm-yyyy into yyyy-mm-dd and back.
func (n *Normalizer) swapDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		n.log.Warn("normalize: unexpected date layout", "birth_date", date)
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// number parses the leading integer of s. Sentinels and empty values are 0;
// anything else unparseable is 0 and logged.
func (n *Normalizer) number(field, s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.Sentinel || strings.EqualFold(s, unknown) {
		return 0
	}
	v, err := parseLeadingInt(s)
	if err != nil {
		n.log.Warn("normalize: not a number", "field", field, "value", s, "error", err)
		return 0
	}
	return v
}

// parseLeadingInt reads an optional sign followed by digits, ignoring any
// trailing text ("185cm" is 185).
func parseLeadingInt(s string) (int, error) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return strconv.Atoi(s[:end])
}

func orSentinel(s string) string {
	if s == "" {
		return domain.Sentinel
	}
	return s
}

func numberOrSentinel(v int) string {
	if v == 0 {
		return domain.Sentinel
	}
	return strconv.Itoa(v)
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases name and joins its words with hyphens, the form the
// backend expects for tournament and level names.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}
