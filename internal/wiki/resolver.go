package wiki

import (
	"context"
	"log/slog"
	"strings"

	"github.com/naveenspark/courtside/pkg/client"
	"github.com/naveenspark/courtside/pkg/domain"
)

// Resolver combines the Wikidata and Commons lookups used by the views.
type Resolver struct {
	Wikidata *Wikidata
	Commons  *Commons
}

// NewResolver wires a Resolver on the given gateways.
func NewResolver(wikidata, commons *client.Gateway, log *slog.Logger) *Resolver {
	c := NewCommons(commons, log)
	return &Resolver{Wikidata: NewWikidata(wikidata, c, log), Commons: c}
}

// PlayerPhoto resolves a player's photo by Wikidata id, falling back to a
// Commons search by name. Either argument may be empty or the sentinel.
func (r *Resolver) PlayerPhoto(ctx context.Context, wikidataID, name string) (*domain.Image, error) {
	if known(wikidataID) {
		img, err := r.Wikidata.Image(ctx, wikidataID)
		if err != nil || img != nil {
			return img, err
		}
	}
	if !known(name) {
		return nil, nil
	}
	return r.Commons.SearchImage(ctx, name)
}

// TournamentLogo resolves a tournament's logo by name.
func (r *Resolver) TournamentLogo(ctx context.Context, name string) (*domain.Image, error) {
	id, err := r.Wikidata.SearchID(ctx, name)
	if err != nil || id == "" {
		return nil, err
	}
	return r.Wikidata.Logo(ctx, id)
}

// IsEntityID reports whether s looks like a Wikidata item id (Q123).
func IsEntityID(s string) bool {
	if len(s) < 2 || (s[0] != 'Q' && s[0] != 'q') {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func known(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != domain.Sentinel
}
