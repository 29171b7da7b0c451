package wiki

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/naveenspark/courtside/pkg/domain"
)

var boilerplate = []string{
	"Photographed by",
	"(no real name)",
	"croped",
	"Crop",
}

var parenthesized = regexp.MustCompile(`\([^)]*\)`)

// CleanAttribution strips boilerplate and parenthesized remarks from the
// author and title. The result is a fixed point: cleaning it again changes
// nothing. a is not modified.
func CleanAttribution(a domain.Attribution) domain.Attribution {
	a.Author = cleanField(a.Author)
	a.Title = cleanField(a.Title)
	return a
}

func cleanField(s string) string {
	for {
		next := s
		for _, part := range boilerplate {
			next = strings.ReplaceAll(next, part, "")
		}
		next = parenthesized.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}

// plainText reduces an extmetadata value, which may hold HTML, to its text.
func plainText(v string) string {
	if !strings.ContainsAny(v, "<&") {
		return strings.TrimSpace(v)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(v))
	if err != nil {
		return strings.TrimSpace(v)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
